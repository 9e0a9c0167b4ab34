package eval

// Options управляет доменной политикой вычислителя.
type Options struct {
	// Strict превращает выход за математическую область в *DomainError.
	// По умолчанию (false) действует IEEE-754: NaN и ±Inf распространяются
	// молча, как в арифметике самих float64.
	Strict bool
}
