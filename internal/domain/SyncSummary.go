package domain

import "time"

// BranchOutcome é o resultado de um dos dois ramos independentes de uma
// execução (campanhas ou produtos).
type BranchOutcome struct {
	Synced    bool   `json:"synced"`
	Records   int    `json:"records"`
	Processed int    `json:"processed"`
	Error     string `json:"error,omitempty"`
}

// SyncSummary resume uma execução de sincronização. Uma execução nunca
// termina como no-op silencioso: os dois ramos sempre aparecem aqui, com
// contagem processada ou com o erro que os encerrou.
type SyncSummary struct {
	RunID      string        `json:"run_id"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Duration   string        `json:"duration"`
	Campaigns  BranchOutcome `json:"campaigns"`
	Products   BranchOutcome `json:"products"`
}
