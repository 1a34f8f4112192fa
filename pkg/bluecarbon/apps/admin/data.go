package admin

// Demo content shown by the admin screens. Figures are illustrative.

// Status is the lifecycle stage of a registered project.
type Status string

const (
	StatusPlanning              Status = "planning"
	StatusOngoing               Status = "ongoing"
	StatusVerificationPending   Status = "verification-pending"
	StatusCreditIssuancePending Status = "credit-issuance-pending"
	StatusCompleted             Status = "completed"
	StatusRejected              Status = "rejected"
)

type project struct {
	ID              string
	Title           string
	Community       string
	Location        string
	Area            string
	Species         string
	Status          Status
	ExpectedCredits float64
	Progress        int
}

var projects = []project{
	{"SUN-2024-127", "Sundarbans Mangrove Restoration Phase 2", "Sundarbans Warriors Collective", "Sundarbans East, West Bengal", "2.5 hectares", "Avicennia marina, Rhizophora apiculata", StatusVerificationPending, 125, 85},
	{"KER-2024-089", "Kerala Backwaters Seagrass Conservation", "Coastal Kerala Collective", "Vembanad Lake, Kerala", "1.8 hectares", "Zostera marina, Halophila ovalis", StatusCreditIssuancePending, 89, 100},
	{"GUJ-2024-156", "Gujarat Coastal Afforestation Initiative", "Gujarat Marine Guardians", "Kutch District, Gujarat", "3.2 hectares", "Avicennia officinalis, Ceriops tagal", StatusOngoing, 165, 45},
	{"ODI-2024-201", "Odisha Deltaic Mangrove Restoration", "Odisha Delta Defenders", "Bhitarkanika, Odisha", "4.1 hectares", "Rhizophora mucronata, Bruguiera gymnorrhiza", StatusPlanning, 220, 15},
	{"TN-2024-145", "Tamil Nadu Coastal Protection Project", "Tamil Coast Conservators", "Pichavaram, Tamil Nadu", "2.9 hectares", "Avicennia marina, Rhizophora apiculata", StatusCompleted, 145, 100},
	{"AND-2024-078", "Andaman Islands Coral Reef Conservation", "Andaman Marine Alliance", "Havelock Island, Andaman", "1.5 hectares", "Coral restoration, Seagrass beds", StatusRejected, 78, 25},
}

// findProject returns the project with id, or the first project in status when id is unknown.
func findProject(id string, fallback Status) project {
	for _, p := range projects {
		if p.ID == id {
			return p
		}
	}
	for _, p := range projects {
		if p.Status == fallback {
			return p
		}
	}
	return projects[0]
}

// trackTarget is where tracking a project leads, if anywhere.
func trackTarget(p project) (Screen, bool) {
	switch p.Status {
	case StatusVerificationPending:
		return ScreenVerification, true
	case StatusCreditIssuancePending:
		return ScreenIssuance, true
	default:
		return 0, false
	}
}

var checklist = []struct {
	Label    string
	Critical bool
}{
	{"GPS coordinates match project boundaries", true},
	{"Planting completed within specified timeframe", true},
	{"Correct species planted as per project plan", true},
	{"Minimum tree density requirements met", true},
	{"Saplings show healthy growth indicators", false},
	{"All required documentation provided", true},
}

var monthlyIssuance = []struct {
	Month    string
	Credits  int
	Projects int
}{
	{"Jan", 4800, 12},
	{"Feb", 5200, 15},
	{"Mar", 4900, 18},
	{"Apr", 6100, 22},
	{"May", 7300, 28},
	{"Jun", 8900, 34},
}

var ecosystemShare = []struct {
	Name    string
	Percent int
}{
	{"Mangrove Restoration", 45},
	{"Coastal Afforestation", 32},
	{"Seagrass Conservation", 23},
}

var sites = []struct {
	Name    string
	Status  string
	Credits int
}{
	{"Sundarbans East", "active", 12500},
	{"Kerala Backwaters", "active", 8900},
	{"Gujarat Coastal", "pending", 5600},
	{"Odisha Deltaic", "active", 15600},
	{"Tamil Nadu Coast", "active", 9800},
}

// demoIdentities are the sign-in identities offered on the login screen.
var demoIdentities = map[Role]string{
	RoleAdmin:   "admin@nccr.gov.in",
	RoleAuditor: "auditor@nccr.gov.in",
	RoleNGO:     "ngo@nccr.gov.in",
}
