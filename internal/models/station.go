package models

// Station is a fuel station referenced by operations. code_1c is the
// external accounting identifier used by the 1C integration.
type Station struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Code1C  string `json:"code_1c"`
	Address string `json:"address"`
}
