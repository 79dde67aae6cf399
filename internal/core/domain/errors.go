package domain

import "errors"

// ErrInvalidBloodType is returned whenever input names a blood group
// outside BloodTypes (or, where the N/A sentinel is allowed, outside
// BloodTypes plus N/A).
var ErrInvalidBloodType = errors.New("invalid blood type")
