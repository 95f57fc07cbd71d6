package models

// Article is a built-in piece of educational content. Articles are not stored.
type Article struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	ReadMinutes int    `json:"read_minutes"`
	Summary     string `json:"summary"`
}

func DefaultArticles() []Article {
	return []Article{
		{Slug: "entendendo-a-endometriose", Title: "Entendendo a Endometriose: O Que Você Precisa Saber", Category: "Sintomas", ReadMinutes: 5, Summary: "Uma visão completa sobre a endometriose, seus sintomas e como identificar os sinais."},
		{Slug: "dieta-anti-inflamatoria", Title: "Dieta Anti-inflamatória para Endometriose", Category: "Alimentação", ReadMinutes: 8, Summary: "Conheça os alimentos que podem ajudar a reduzir a inflamação e aliviar os sintomas."},
		{Slug: "opcoes-de-tratamento", Title: "Opções de Tratamento: Guia Completo", Category: "Tratamentos", ReadMinutes: 12, Summary: "Explore as diferentes abordagens de tratamento disponíveis e como escolher a melhor para você."},
		{Slug: "exercicios-e-endometriose", Title: "Exercícios e Endometriose: Como Se Movimentar com Segurança", Category: "Bem-estar", ReadMinutes: 6, Summary: "Descubra quais exercícios são seguros e benéficos para quem tem endometriose."},
		{Slug: "caminho-para-o-diagnostico", Title: "O Caminho para o Diagnóstico: Exames e Especialistas", Category: "Diagnóstico", ReadMinutes: 10, Summary: "Entenda o processo de diagnóstico e quais exames são necessários."},
		{Slug: "gerenciamento-da-dor", Title: "Técnicas de Gerenciamento da Dor", Category: "Bem-estar", ReadMinutes: 7, Summary: "Aprenda métodos naturais e práticos para lidar com a dor no dia a dia."},
		{Slug: "impacto-emocional", Title: "O Impacto Emocional da Endometriose", Category: "Bem-estar", ReadMinutes: 9, Summary: "Como cuidar da sua saúde mental enquanto lida com uma doença crônica."},
	}
}
