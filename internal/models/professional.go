package models

import "time"

type Professional struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Name       string  `gorm:"not null" json:"name"`
	Specialty  string  `gorm:"not null;index" json:"specialty"`
	Location   string  `gorm:"not null" json:"location"`
	Rating     float64 `gorm:"not null;default:0" json:"rating"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email"`
	Experience string  `json:"experience"`
}

type ProfessionalFavorite struct {
	ID             uint      `gorm:"primaryKey"`
	UserID         uint      `gorm:"not null;uniqueIndex:uidx_user_professional"`
	ProfessionalID uint      `gorm:"not null;uniqueIndex:uidx_user_professional"`
	CreatedAt      time.Time
}

func DefaultProfessionals() []Professional {
	return []Professional{
		{Name: "Dra. Ana Silva", Specialty: "Ginecologista", Location: "São Paulo, SP", Rating: 4.9, Phone: "(11) 98765-4321", Email: "ana.silva@exemplo.com", Experience: "15 anos de experiência em endometriose"},
		{Name: "Dra. Mariana Costa", Specialty: "Nutricionista", Location: "São Paulo, SP", Rating: 4.8, Phone: "(11) 98765-1234", Email: "mariana.costa@exemplo.com", Experience: "Especialista em dieta anti-inflamatória"},
		{Name: "Dr. Pedro Santos", Specialty: "Fisioterapeuta", Location: "Rio de Janeiro, RJ", Rating: 4.7, Phone: "(21) 98765-5678", Email: "pedro.santos@exemplo.com", Experience: "Tratamento de dor pélvica crônica"},
		{Name: "Dra. Julia Mendes", Specialty: "Psicólogo", Location: "Belo Horizonte, MG", Rating: 4.9, Phone: "(31) 98765-9012", Email: "julia.mendes@exemplo.com", Experience: "Apoio psicológico em doenças crônicas"},
		{Name: "Dra. Carolina Oliveira", Specialty: "Ginecologista", Location: "Curitiba, PR", Rating: 4.8, Phone: "(41) 98765-3456", Email: "carolina.oliveira@exemplo.com", Experience: "Cirurgia minimamente invasiva"},
	}
}
