package dto

// DashboardResponse indicadores del dashboard para una ventana de tiempo.
type DashboardResponse struct {
	Period   string               `json:"period"`
	KPIs     KPIResponse          `json:"kpis"`
	Daily    []DailyPointResponse `json:"daily"`
	Channels []ChannelResponse    `json:"channels"`
}

// KPIResponse indicadores agregados.
type KPIResponse struct {
	Total int `json:"total"`
	Won   int `json:"won"`
	// ConversionRate porcentaje con un decimal fijo, p. ej. "50.0".
	ConversionRate string `json:"conversion_rate"`
	WonValue       string `json:"won_value"`
}

// DailyPointResponse punto de la serie diaria de leads creados.
type DailyPointResponse struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Won   int    `json:"won"`
}

// ChannelResponse actividad de un canal de origen.
type ChannelResponse struct {
	Channel        string `json:"channel"`
	Count          int    `json:"count"`
	Won            int    `json:"won"`
	ConversionRate string `json:"conversion_rate"`
}
