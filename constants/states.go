package constants

// IndianStates holds common state names used when recovering the
// place-of-supply state from raw invoice text.
var IndianStates = []string{
	"Maharashtra",
	"Karnataka",
	"Tamil Nadu",
	"Delhi",
	"Uttar Pradesh",
	"Gujarat",
	"Rajasthan",
	"Punjab",
	"Haryana",
	"Kerala",
	"West Bengal",
	"Andhra Pradesh",
	"Telangana",
	"Madhya Pradesh",
	"Bihar",
	"Odisha",
}
