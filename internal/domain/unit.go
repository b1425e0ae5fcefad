package domain

// Company identifies an organizational unit. Membership is validated, there
// is no hierarchy beyond grouping.
type Company string

const (
	CompanyA            Company = "A"
	CompanyB            Company = "B"
	CompanyC            Company = "C"
	CompanySupport      Company = "SUPPORT"
	CompanyHeadquarters Company = "HEADQUARTERS"
)

func (c Company) Valid() bool {
	switch c {
	case CompanyA, CompanyB, CompanyC, CompanySupport, CompanyHeadquarters:
		return true
	}
	return false
}

func Companies() []Company {
	return []Company{CompanyA, CompanyB, CompanyC, CompanySupport, CompanyHeadquarters}
}

// Platoon subdivides a company. UNCATEGORIZED holds entries not yet assigned.
type Platoon string

const PlatoonUncategorized Platoon = "UNCATEGORIZED"

func (p Platoon) Valid() bool {
	if p == PlatoonUncategorized {
		return true
	}
	if len(p) != 1 {
		return false
	}
	return p[0] >= '1' && p[0] <= '9'
}
