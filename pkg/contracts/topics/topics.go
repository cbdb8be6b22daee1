package topics

const (
	// Forecasts
	ForecastRequested = "forecast_requested"
	ForecastComputed  = "forecast_computed"

	// DLQ
	ForecastRequestedDLQ = "forecast_requested_dlq"
)
