package constants

// Icon names. Each maps to an SVG file in the icon set and is referenced by screens.
const (
	IconLogin     = "login"
	IconHome      = "home"
	IconUpload    = "upload"
	IconWallet    = "wallet"
	IconTrophy    = "trophy"
	IconFolder    = "folder"
	IconProfile   = "profile"
	IconDashboard = "dashboard"
	IconCheck     = "check"
	IconCredit    = "credit"
	IconChart     = "chart"
	IconGlobe     = "globe"
	IconReport    = "report"
	IconLeaf      = "leaf"
)
