package entity

// Gender is the customer's stated gender.
type Gender string

const (
	GenderMale    Gender = "MALE"
	GenderFemale  Gender = "FEMALE"
	GenderDiverse Gender = "DIVERSE"
)

// IsValid checks if the Gender is a valid value.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderDiverse:
		return true
	default:
		return false
	}
}

// MaritalStatus is the customer's marital status.
type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "SINGLE"
	MaritalMarried  MaritalStatus = "MARRIED"
	MaritalDivorced MaritalStatus = "DIVORCED"
	MaritalWidowed  MaritalStatus = "WIDOWED"
	MaritalOther    MaritalStatus = "OTHER"
)

// IsValid checks if the MaritalStatus is a valid value.
func (m MaritalStatus) IsValid() bool {
	switch m {
	case MaritalSingle, MaritalMarried, MaritalDivorced, MaritalWidowed, MaritalOther:
		return true
	default:
		return false
	}
}

// CustomerState is the lifecycle state of a customer record.
type CustomerState string

const (
	StateActive   CustomerState = "ACTIVE"
	StateBlocked  CustomerState = "BLOCKED"
	StateInactive CustomerState = "INACTIVE"
	StateClosed   CustomerState = "CLOSED"
)

// IsValid checks if the CustomerState is a valid value.
func (s CustomerState) IsValid() bool {
	switch s {
	case StateActive, StateBlocked, StateInactive, StateClosed:
		return true
	default:
		return false
	}
}

// Relationship describes how a contact relates to the customer.
type Relationship string

const (
	RelPartner         Relationship = "PARTNER"
	RelBusinessPartner Relationship = "BUSINESS_PARTNER"
	RelRelative        Relationship = "RELATIVE"
	RelColleague       Relationship = "COLLEAGUE"
	RelParent          Relationship = "PARENT"
	RelSibling         Relationship = "SIBLING"
	RelChild           Relationship = "CHILD"
	RelCousin          Relationship = "COUSIN"
)

// IsValid checks if the Relationship is a valid value.
func (r Relationship) IsValid() bool {
	switch r {
	case RelPartner, RelBusinessPartner, RelRelative, RelColleague,
		RelParent, RelSibling, RelChild, RelCousin:
		return true
	default:
		return false
	}
}

// Interest is a topic the customer wants to hear about.
type Interest string

const (
	InterestInvestments       Interest = "INVESTMENTS"
	InterestSavingAndFinance  Interest = "SAVING_AND_FINANCE"
	InterestCreditAndDebt     Interest = "CREDIT_AND_DEBT"
	InterestBankProducts      Interest = "BANK_PRODUCTS_AND_SERVICES"
	InterestFinancialCounsel  Interest = "FINANCIAL_EDUCATION_AND_COUNSELING"
	InterestRealEstate        Interest = "REAL_ESTATE"
	InterestInsurance         Interest = "INSURANCE"
	InterestSustainable       Interest = "SUSTAINABLE_FINANCE"
	InterestTechAndInnovation Interest = "TECHNOLOGY_AND_INNOVATION"
	InterestTravel            Interest = "TRAVEL"
)

// IsValid checks if the Interest is a valid value.
func (i Interest) IsValid() bool {
	switch i {
	case InterestInvestments, InterestSavingAndFinance, InterestCreditAndDebt,
		InterestBankProducts, InterestFinancialCounsel, InterestRealEstate,
		InterestInsurance, InterestSustainable, InterestTechAndInnovation,
		InterestTravel:
		return true
	default:
		return false
	}
}

// ContactOption is a channel the customer may be reached on.
type ContactOption string

const (
	ContactEmail  ContactOption = "EMAIL"
	ContactPhone  ContactOption = "PHONE"
	ContactLetter ContactOption = "LETTER"
	ContactSMS    ContactOption = "SMS"
)

// IsValid checks if the ContactOption is a valid value.
func (c ContactOption) IsValid() bool {
	switch c {
	case ContactEmail, ContactPhone, ContactLetter, ContactSMS:
		return true
	default:
		return false
	}
}
