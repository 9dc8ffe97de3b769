package shared

// BaseAggregateRoot adds an optimistic-lock version to the base entity
// fields. Every mutating aggregate method calls IncrementVersion so the
// version reflects the number of state changes since creation.
type BaseAggregateRoot struct {
	BaseEntity
	Version int
}

// IncrementVersion increments the version number
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
}

// NewBaseAggregateRoot creates a new base aggregate root
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(),
		Version:    1,
	}
}
