package job

// Company identifies one of the two legal entities the system tracks
// accounting for. The set is closed: these are fixed enumerations, not
// stored entities.
type Company string

const (
	CompanyAlcafer Company = "alcafer"
	CompanyGabifer Company = "gabifer"
)

// IsValid checks if the company is a valid Company
func (c Company) IsValid() bool {
	switch c {
	case CompanyAlcafer, CompanyGabifer:
		return true
	}
	return false
}

// String returns the string representation of Company
func (c Company) String() string {
	return string(c)
}

// DepositRecipient identifies who receives the client's deposit payment:
// one of the two companies, or the client pays a third party directly.
type DepositRecipient string

const (
	DepositToAlcafer      DepositRecipient = "alcafer"
	DepositToGabifer      DepositRecipient = "gabifer"
	DepositDirectToClient DepositRecipient = "direct_to_client"
)

// IsValid checks if the recipient is a valid DepositRecipient
func (r DepositRecipient) IsValid() bool {
	switch r {
	case DepositToAlcafer, DepositToGabifer, DepositDirectToClient:
		return true
	}
	return false
}

// IsDirect returns true when the client pays directly, bypassing both
// companies. In that mode no company issues a deposit invoice.
func (r DepositRecipient) IsDirect() bool {
	return r == DepositDirectToClient
}

// String returns the string representation of DepositRecipient
func (r DepositRecipient) String() string {
	return string(r)
}
