package seeders

type teamSeed struct {
	Name           string
	Specialization string
	Members        []string
}

type equipmentSeed struct {
	Name         string
	SerialNumber string
	Category     string
	Department   string
	TeamName     string
	Location     string
	Condition    string
	HealthScore  int
}

type requestSeed struct {
	Subject       string
	Status        string
	EquipmentName string
	Type          string
	Priority      string
	Description   string
}

var teamsData = []teamSeed{
	{Name: "Mechanics A", Specialization: "Mechanical", Members: []string{"G. Otero", "L. Pham"}},
	{Name: "Electrics", Specialization: "Electrical", Members: []string{"R. Castillo"}},
	{Name: "HVAC Crew", Specialization: "HVAC", Members: []string{"M. Deng", "A. Sow", "J. Brandt"}},
}

var equipmentsData = []equipmentSeed{
	{Name: "CNC Mill 3", SerialNumber: "CM3-0117", Category: "Machinery", Department: "Production", TeamName: "Mechanics A", Location: "Hall 1", Condition: "Good", HealthScore: 92},
	{Name: "Conveyor B", SerialNumber: "CV-2203", Category: "Machinery", Department: "Production", TeamName: "Mechanics A", Location: "Hall 2", Condition: "Fair", HealthScore: 64},
	{Name: "Main Compressor", SerialNumber: "AC-0042", Category: "Utilities", Department: "Facilities", TeamName: "HVAC Crew", Location: "Basement", Condition: "Good", HealthScore: 88},
	{Name: "Welding Robot 1", SerialNumber: "WR1-9001", Category: "Robotics", Department: "Production", TeamName: "Electrics", Location: "Hall 1", Condition: "Poor", HealthScore: 31},
}

var requestsData = []requestSeed{
	{Subject: "Spindle vibration above tolerance", Status: "New", EquipmentName: "CNC Mill 3", Type: "Corrective", Priority: "High", Description: "Operator reports vibration at high RPM."},
	{Subject: "Quarterly belt inspection", Status: "In Progress", EquipmentName: "Conveyor B", Type: "Preventive", Priority: "Medium", Description: ""},
	{Subject: "Replace worn torch nozzle", Status: "Repaired", EquipmentName: "Welding Robot 1", Type: "Corrective", Priority: "Low", Description: "Nozzle replaced, test welds OK."},
}
