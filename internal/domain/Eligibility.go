package domain

// EligibilityEntry marca um produto como apto a veicular em uma campanha,
// junto com o grupo de anúncios do critério de listing group que o habilita.
type EligibilityEntry struct {
	Enabled   bool
	AdGroupID string
}

// AllowSet é o conjunto de produtos elegíveis por campanha, reconstruído a
// cada execução a partir dos critérios de listing group. Nunca é persistido.
type AllowSet map[ProductRef]EligibilityEntry

// Admit decide se uma linha de performance de produto entra na agregação.
// Com o conjunto vazio (nenhum critério encontrado ou consulta falhou), toda
// linha é admitida: o degrade é deliberadamente fail-open, preferindo
// sobre-inclusão a descartar silenciosamente todos os produtos.
func (s AllowSet) Admit(campaignID, productID string) bool {
	if len(s) == 0 {
		return true
	}

	_, ok := s[ProductRef{CampaignID: campaignID, ProductID: productID}]
	return ok
}
