// Package types provides the data model shared by the scoring, hierarchy, engine, and API layers.
package types

// ListeningReason is the reason a candidate gave for listening to new offers.
// It selects which weight matrix the engine applies.
type ListeningReason string

// Known listening reasons. Anything else normalizes to ReasonUnspecified.
const (
	ReasonCompensation  ListeningReason = "compensation"
	ReasonRoleMismatch  ListeningReason = "role_mismatch"
	ReasonNoGrowth      ListeningReason = "no_growth"
	ReasonNoFlexibility ListeningReason = "no_flexibility"
	ReasonUnspecified   ListeningReason = "unspecified"
)

// ListeningReasons returns the known non-default reasons in stable order.
func ListeningReasons() []ListeningReason {
	return []ListeningReason{ReasonCompensation, ReasonRoleMismatch, ReasonNoGrowth, ReasonNoFlexibility}
}

// NormalizeListeningReason maps raw input to a known reason, defaulting to unspecified.
func NormalizeListeningReason(raw ListeningReason) ListeningReason {
	switch raw {
	case ReasonCompensation, ReasonRoleMismatch, ReasonNoGrowth, ReasonNoFlexibility:
		return raw
	default:
		return ReasonUnspecified
	}
}

// ContractType represents an employment contract form.
type ContractType string

// Contract types offered by positions and preferred by candidates.
const (
	ContractPermanent      ContractType = "permanent"
	ContractFixedTerm      ContractType = "fixed_term"
	ContractFreelance      ContractType = "freelance"
	ContractApprenticeship ContractType = "apprenticeship"
)

// WorkMode represents where the work happens.
type WorkMode string

// Work modes.
const (
	WorkModeOnsite WorkMode = "onsite"
	WorkModeHybrid WorkMode = "hybrid"
	WorkModeRemote WorkMode = "remote"
)

// CandidateStatus represents how actively a candidate is looking.
type CandidateStatus string

// Candidate availability statuses.
const (
	StatusActive      CandidateStatus = "active"
	StatusOpen        CandidateStatus = "open"
	StatusPassive     CandidateStatus = "passive"
	StatusUnavailable CandidateStatus = "unavailable"
)

// Position attributes the intent scorers look for.
const (
	AttrGrowth      = "growth"
	AttrFlexibility = "flexibility"
	AttrStability   = "stability"
)

// CandidateRecord is a structured candidate profile. All fields are optional:
// missing data degrades the affected component scores, it never fails an
// evaluation. Salary and notice fields are pointers so absent and zero stay
// distinguishable.
type CandidateRecord struct {
	ID                  string          `json:"id,omitempty"`
	FullName            string          `json:"full_name,omitempty"`
	CurrentTitle        string          `json:"current_title,omitempty"`
	ResponsibilityScope string          `json:"responsibility_scope,omitempty"`
	YearsExperience     float64         `json:"years_experience,omitempty" validate:"gte=0"`
	Skills              []string        `json:"skills,omitempty"`
	CurrentSalary       *float64        `json:"current_salary,omitempty" validate:"omitempty,gte=0"`
	DesiredSalary       *float64        `json:"desired_salary,omitempty" validate:"omitempty,gte=0"`
	City                string          `json:"city,omitempty"`
	Province            string          `json:"province,omitempty"`
	Region              string          `json:"region,omitempty"`
	WillingToRelocate   bool            `json:"willing_to_relocate,omitempty"`
	Sectors             []string        `json:"sectors,omitempty"`
	OpenToAnySector     bool            `json:"open_to_any_sector,omitempty"`
	PreferredContracts  []ContractType  `json:"preferred_contracts,omitempty" validate:"dive,oneof=permanent fixed_term freelance apprenticeship"`
	DesiredWorkModes    []WorkMode      `json:"desired_work_modes,omitempty" validate:"dive,oneof=onsite hybrid remote"`
	NoticeWeeks         *int            `json:"notice_weeks,omitempty" validate:"omitempty,gte=0"`
	Motivations         []string        `json:"motivations,omitempty"`
	ListeningReason     ListeningReason `json:"listening_reason,omitempty" validate:"omitempty,oneof=compensation role_mismatch no_growth no_flexibility unspecified"`
	Status              CandidateStatus `json:"status,omitempty" validate:"omitempty,oneof=active open passive unavailable"`
}

// Reason returns the candidate's listening reason normalized to the known set.
func (c *CandidateRecord) Reason() ListeningReason {
	return NormalizeListeningReason(c.ListeningReason)
}

// PositionRecord is a structured open position. Like CandidateRecord, every
// field is optional and missing data degrades rather than errors.
type PositionRecord struct {
	ID               string       `json:"id,omitempty"`
	Title            string       `json:"title,omitempty"`
	Company          string       `json:"company,omitempty"`
	SeniorityLabel   string       `json:"seniority_label,omitempty"`
	RequiredSkills   []string     `json:"required_skills,omitempty"`
	PreferredSkills  []string     `json:"preferred_skills,omitempty"`
	Keywords         []string     `json:"keywords,omitempty"`
	YearsMin         float64      `json:"years_min,omitempty" validate:"gte=0"`
	YearsMax         float64      `json:"years_max,omitempty" validate:"gte=0"`
	SalaryMin        *float64     `json:"salary_min,omitempty" validate:"omitempty,gte=0"`
	SalaryMax        *float64     `json:"salary_max,omitempty" validate:"omitempty,gte=0"`
	City             string       `json:"city,omitempty"`
	Province         string       `json:"province,omitempty"`
	Region           string       `json:"region,omitempty"`
	WorkMode         WorkMode     `json:"work_mode,omitempty" validate:"omitempty,oneof=onsite hybrid remote"`
	Sector           string       `json:"sector,omitempty"`
	Contract         ContractType `json:"contract,omitempty" validate:"omitempty,oneof=permanent fixed_term freelance apprenticeship"`
	StartWithinWeeks *int         `json:"start_within_weeks,omitempty" validate:"omitempty,gte=0"`
	Attributes       []string     `json:"attributes,omitempty"`
}

// Urgent reports whether the position needs someone within two weeks.
func (p *PositionRecord) Urgent() bool {
	return p.StartWithinWeeks != nil && *p.StartWithinWeeks <= 2
}

// HasAttribute reports whether the position advertises the given attribute.
func (p *PositionRecord) HasAttribute(attr string) bool {
	for _, a := range p.Attributes {
		if a == attr {
			return true
		}
	}
	return false
}
