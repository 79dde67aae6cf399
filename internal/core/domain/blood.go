package domain

// BloodTypeNA is the sentinel stored on non-donor admin accounts whose
// blood type, region and sub-region do not apply.
const BloodTypeNA = "N/A"

// BloodTypes lists the eight valid blood groups.
var BloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// IsValidBloodType reports whether bt is one of the eight blood groups.
func IsValidBloodType(bt string) bool {
	for _, t := range BloodTypes {
		if bt == t {
			return true
		}
	}
	return false
}

// IsValidBloodTypeOrNA additionally accepts the N/A sentinel (admin accounts).
func IsValidBloodTypeOrNA(bt string) bool {
	return bt == BloodTypeNA || IsValidBloodType(bt)
}
