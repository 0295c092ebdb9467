package metrics

// IncDegradedMode инкрементирует счётчик срабатываний degraded mode
func (m *Metrics) IncDegradedMode(operation string) {
	m.DegradedModeTotal.WithLabelValues(operation).Inc()
}

// IncHoldCreated инкрементирует счётчик созданных hold'ов (mode: real | synthetic)
func (m *Metrics) IncHoldCreated(mode string) {
	m.HoldsCreatedTotal.WithLabelValues(mode).Inc()
}

// IncHoldRaceLost инкрементирует счётчик проигранных CAS-гонок за окно
func (m *Metrics) IncHoldRaceLost() {
	m.HoldRaceLostTotal.Inc()
}

// Nop заглушка для выключенных метрик
type Nop struct{}

func (Nop) IncDegradedMode(string) {}
func (Nop) IncHoldCreated(string)  {}
func (Nop) IncHoldRaceLost()       {}
