package marketplace

// Demo content shown by the marketplace screens. Figures are illustrative.

type listing struct {
	ID        string
	Title     string
	Community string
	Location  string
	Ecosystem string
	Available int
	Price     int // USD per credit
	Rating    float64
	Impact    string
	Members   int
}

var listings = []listing{
	{"SUN-001", "Sundarbans Mangrove Conservation", "Sundarbans Warriors Collective", "West Bengal, India", "Mangrove Forest", 1250, 45, 4.9, "312 tons CO2", 89},
	{"KER-002", "Kerala Coastal Restoration", "Backwater Guardians", "Kerala, India", "Coastal Wetlands", 890, 42, 4.8, "234 tons CO2", 67},
	{"GUJ-003", "Gujarat Salt Marsh Revival", "Coastal Healers Initiative", "Gujarat, India", "Salt Marshes", 1560, 38, 4.7, "425 tons CO2", 124},
	{"ODI-004", "Odisha Deltaic Restoration", "Delta Protectors Collective", "Odisha, India", "River Delta", 2100, 48, 4.9, "578 tons CO2", 156},
	{"TN-005", "Tamil Nadu Seagrass Conservation", "Ocean Guardians Tamil Nadu", "Tamil Nadu, India", "Seagrass Beds", 750, 52, 4.8, "187 tons CO2", 45},
	{"AND-006", "Andaman Coral Reef Protection", "Island Reef Keepers", "Andaman & Nicobar, India", "Coral Reefs", 950, 55, 4.6, "236 tons CO2", 38},
}

func findListing(id string) (listing, bool) {
	for _, l := range listings {
		if l.ID == id {
			return l, true
		}
	}
	return listing{}, false
}

// defaultPurchase is the lot size offered on the project page.
const defaultPurchase = 100

type wallet struct {
	Total       int
	Available   int
	Retired     int
	ValueUSD    int
	AvgPriceUSD int
}

var corporateWallet = wallet{Total: 2450, Available: 1850, Retired: 600, ValueUSD: 110250, AvgPriceUSD: 45}

type retirement struct {
	ID          string
	Project     string
	Credits     int
	Date        string
	Reason      string
	Certificate string
}

var retirements = []retirement{
	{"RET-001", "Sundarbans Mangrove Conservation", 300, "2024-03-20", "Annual ESG reporting offset", "CERT-2024-001"},
	{"RET-002", "Kerala Coastal Restoration", 200, "2024-03-18", "Corporate sustainability initiative", "CERT-2024-002"},
	{"RET-003", "Gujarat Salt Marsh Revival", 100, "2024-03-12", "Employee carbon footprint offset", "CERT-2024-003"},
}

// defaultRetirement is the retirement offered on the wallet screen.
var defaultRetirement = struct {
	Credits int
	Reason  string
}{100, "Quarterly Scope 3 offset"}

var portfolio = []struct {
	Name    string
	Percent int
	Credits int
}{
	{"Mangrove Restoration", 45, 1260},
	{"Coastal Wetlands", 28, 784},
	{"Seagrass Conservation", 18, 504},
	{"Salt Marsh Revival", 9, 252},
}

var milestones = []struct {
	Date      string
	Milestone string
	Status    string
}{
	{"2024-01", "Carbon neutrality commitment announced", "completed"},
	{"2024-03", "First blue carbon credit purchase", "completed"},
	{"2024-06", "50% emission reduction target", "completed"},
	{"2024-09", "1000 credits retired milestone", "completed"},
	{"2024-12", "Net-zero transition plan", "in-progress"},
	{"2025-06", "Carbon negative target", "planned"},
}

var certifications = []struct {
	Name   string
	Status string
	Date   string
}{
	{"Science Based Targets Initiative (SBTi)", "Certified", "2024-02"},
	{"Carbon Trust Standard", "Certified", "2024-01"},
	{"UN Global Compact", "Signatory", "2023-12"},
	{"CDP Climate A-List", "Achieved", "2024-03"},
}

const companyName = "TechCorp Industries"
