package mobile

// Demo content shown by the mobile screens. Figures are illustrative.

type project struct {
	ID       string
	Name     string
	Location string
	Credits  float64
	Progress int
}

var projects = []project{
	{ID: "sundarbans-east", Name: "Sundarbans East Conservation", Location: "West Bengal", Credits: 45.2, Progress: 78},
	{ID: "mangrove-restoration", Name: "Coastal Mangrove Restoration", Location: "Odisha", Credits: 32.8, Progress: 65},
	{ID: "community-afforestation", Name: "Community Afforestation Project", Location: "Tamil Nadu", Credits: 11.5, Progress: 45},
}

type activity struct {
	Action   string
	Location string
	When     string
	Status   string
}

var recentActivity = []activity{
	{Action: "Tree planting verified", Location: "Sundarbans East", When: "2 hours ago", Status: "approved"},
	{Action: "Monitoring data uploaded", Location: "Mangrove Site A2", When: "1 day ago", Status: "pending"},
	{Action: "Carbon credit issued", Location: "Community Project", When: "3 days ago", Status: "completed"},
}

type balance struct {
	Total     float64
	Available float64
	Pending   float64
}

var walletBalance = balance{Total: 89.5, Available: 77.2, Pending: 12.3}

type transaction struct {
	Amount      string
	Description string
	Project     string
	When        string
	Status      string
}

var transactions = []transaction{
	{Amount: "+5.2", Description: "Carbon credits issued", Project: "Mangrove Restoration Q3", When: "2 hours ago", Status: "completed"},
	{Amount: "-2.1", Description: "Transferred to community pool", Project: "Community Collective", When: "1 day ago", Status: "completed"},
	{Amount: "+8.7", Description: "Tree planting verification", Project: "Sundarbans Conservation", When: "3 days ago", Status: "pending"},
	{Amount: "+15.0", Description: "Monitoring data approved", Project: "Coastal Protection Initiative", When: "1 week ago", Status: "approved"},
}

type approval struct {
	Requester   string
	Amount      float64
	Purpose     string
	Signatories string
	TimeLeft    string
}

var pendingApprovals = []approval{
	{Requester: "Community Agent Sarah", Amount: 25.5, Purpose: "Equipment purchase", Signatories: "2/3", TimeLeft: "2 days"},
	{Requester: "Project Coordinator", Amount: 50.0, Purpose: "Seedling procurement", Signatories: "1/3", TimeLeft: "5 days"},
}

type team struct {
	Rank   int
	Name   string
	Points int
}

var leaderboard = []team{
	{1, "Sundarbans Warriors", 2847},
	{2, "Mangrove Guardians", 2156},
	{3, "Green Coast Collective", 1892},
	{4, "Ocean Protectors", 1654},
	{5, "Coastal Healers", 1432},
	{6, "Blue Carbon Builders", 1298},
	{7, "Marine Protectors", 1156},
	{8, "Coastal Guardians", 1023},
}

// currentTeamRank is the rank of the signed-in user's team.
const currentTeamRank = 3

type achievement struct {
	Name        string
	Description string
	Earned      bool
}

var achievements = []achievement{
	{"Tree Planter", "Planted 50+ trees", true},
	{"Data Collector", "Uploaded 100+ data points", true},
	{"Community Helper", "Active for 30 days", true},
	{"Conservation Hero", "Top 10 contributor", false},
}

type member struct {
	Name    string
	Credits float64
	Active  bool
}

var leaderMembers = []member{
	{"Ramesh Kumar", 12.5, true},
	{"Priya Sharma", 8.3, true},
	{"Raj Patel", 15.2, true},
	{"Anita Singh", 6.7, false},
}

type community struct {
	Name    string
	Members int
	Credits float64
	Status  string
}

var agentCommunities = []community{
	{"Sundarbans West", 24, 45.2, "active"},
	{"Coastal Bengal", 18, 32.1, "active"},
	{"Mangrove Delta", 15, 28.4, "active"},
	{"Tamil Coast", 12, 19.7, "planning"},
	{"Odisha Marine", 8, 14.3, "planning"},
}
