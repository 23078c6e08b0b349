package entity

import "github.com/shopspring/decimal"

// Etapas del pipeline de ventas (deben coincidir con el CHECK de crm_leads.stage).
const (
	StageNew       = "nuevo"
	StageInProcess = "en_proceso"
	StageMeeting   = "reunion_agendada"
	StageFollowUp  = "seguimiento"
	StageWon       = "ganado"
	StageLost      = "perdido"
)

// Orígenes de un lead (CHECK de crm_leads.source).
const (
	SourceForm     = "formulario"
	SourceWhatsApp = "whatsapp"
	SourceSocial   = "redes_sociales"
	SourceReferral = "referido"
	SourceOther    = "otros"
)

// SourceLabels etiquetas legibles por origen, usadas en exportes y en el
// desglose por canal del dashboard.
var SourceLabels = map[string]string{
	SourceForm:     "Formulario",
	SourceWhatsApp: "WhatsApp",
	SourceSocial:   "Redes Sociales",
	SourceReferral: "Referido",
	SourceOther:    "Otros",
}

// StageLabels etiquetas legibles por etapa.
var StageLabels = map[string]string{
	StageNew:       "Nuevo Lead",
	StageInProcess: "En Proceso",
	StageMeeting:   "Reunión Agendada",
	StageFollowUp:  "Seguimiento",
	StageWon:       "Venta Cerrada",
	StageLost:      "Perdido",
}

// Lead oportunidad de venta. Es el view model interno: todo campo opcional
// tiene un default definido y CreatedAt se conserva como string ISO 8601 tal
// cual llegó del almacén (el motor de métricas lo parsea y descarta fechas
// ilegibles en vez de inventarlas).
type Lead struct {
	ID        string
	Name      string
	Company   string
	Email     string
	Phone     string
	Source    string
	Value     decimal.Decimal
	CreatedAt string // ISO 8601
	Stage     string
	OwnerID   string
	Notes     string
	CompanyID string // inmutable después de la creación
}

// ValidStage reporta si s es una etapa conocida del pipeline.
func ValidStage(s string) bool {
	_, ok := StageLabels[s]
	return ok
}

// ValidSource reporta si s es un origen conocido.
func ValidSource(s string) bool {
	_, ok := SourceLabels[s]
	return ok
}
