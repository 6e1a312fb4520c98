package models

type FuelType struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Code1C string `json:"code_1c"`
}
