package events

// TeamInput replica as estatísticas de entrada de um time no contrato
// de mensageria (percentuais 0-100, chutes por partida)
type TeamInput struct {
	Name       string  `json:"name"`
	Possession float64 `json:"possession"`
	AvgShots   float64 `json:"avg_shots"`
	Efficiency float64 `json:"efficiency"`
}

// Evento publicado no tópico "forecast_requested"
type ForecastRequested struct {
	RequestID string    `json:"request_id"`
	Home      TeamInput `json:"home"`
	Away      TeamInput `json:"away"`
	Trials    int       `json:"trials"`
	Source    string    `json:"source"` // "forecast-service"
	TsUnixMs  int64     `json:"ts_unix_ms"`
}
