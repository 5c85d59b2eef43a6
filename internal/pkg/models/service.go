package models

// ServiceType selects the kind of chauffeur service
type ServiceType string

const (
	ServiceOneWay    ServiceType = "one_way"
	ServiceRoundTrip ServiceType = "round_trip"
	ServiceHourly    ServiceType = "hourly"
	ServiceFullDay   ServiceType = "full_day"
)

// Valid reports whether the type is one of the known service types
func (t ServiceType) Valid() bool {
	switch t {
	case ServiceOneWay, ServiceRoundTrip, ServiceHourly, ServiceFullDay:
		return true
	}
	return false
}

// IsRoundTrip reports whether the route distance is driven twice
func (t ServiceType) IsRoundTrip() bool {
	return t == ServiceRoundTrip
}

// IsTimeBased reports whether the service is billed by the hour and needs a duration
func (t ServiceType) IsTimeBased() bool {
	return t == ServiceHourly || t == ServiceFullDay
}

// RequiresDropoff reports whether a dropoff address is mandatory
func (t ServiceType) RequiresDropoff() bool {
	return t != ServiceHourly
}

// RouteType tells free-form addresses apart from a selected fixed route
type RouteType string

const (
	RouteFlexible RouteType = "flexible"
	RouteFixed    RouteType = "fixed"
)

// Step is one tab of the booking form
type Step string

const (
	StepClient  Step = "client"
	StepService Step = "service"
	StepDetails Step = "details"
	StepPayment Step = "payment"
)

// Steps lists the form steps in order
var Steps = []Step{StepClient, StepService, StepDetails, StepPayment}

// Index returns the position of the step, or -1 when unknown
func (s Step) Index() int {
	for i, step := range Steps {
		if step == s {
			return i
		}
	}
	return -1
}
