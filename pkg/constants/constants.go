package constants

//============== REQUEST TYPES ==============

const (
	RequestTypeCorrective = "Corrective"
	RequestTypePreventive = "Preventive"
)

//============== REQUEST PRIORITIES ==============

const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

//============== DEFAULTS APPLIED ON CREATE ==============

// Field defaults for a new request when the caller omits the field.
const (
	DefaultRequestType     = RequestTypeCorrective
	DefaultRequestPriority = PriorityMedium
)

// Field defaults for new equipment.
const (
	DefaultSerialNumber = "N/A"
	DefaultCategory     = "Machinery"
	DefaultDepartment   = "Production"
	DefaultCondition    = "Good"
	DefaultHealthScore  = 100
)

// Default specialization for a new team.
const DefaultSpecialization = "Mechanical"

//============== CACHE KEYS ==============

// Redis key holding the serialized dashboard summary.
const CacheKeyDashboardStats = "dashboard:stats"
