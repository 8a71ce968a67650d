package service

import (
	"math"

	"fueleu_compliance/internal/app/ds"
)

const (
	// TargetIntensity is the FuelEU Maritime GHG intensity target, gCO2e/MJ
	// (Regulation (EU) 2023/1805).
	TargetIntensity = 89.3368
	// EnergyPerTonne is the energy content assumed per tonne of fuel, MJ.
	EnergyPerTonne = 41000.0
)

// EnergyInScope returns the energy in MJ for a fuel consumption in tonnes.
func EnergyInScope(fuelConsumption float64) float64 {
	return fuelConsumption * EnergyPerTonne
}

// ComplianceBalance is positive (surplus) when the route is cleaner than
// the target and negative (deficit) otherwise. Unrounded.
func ComplianceBalance(route ds.Route) float64 {
	return (TargetIntensity - route.GhgIntensity) * EnergyInScope(route.FuelConsumption)
}

func IsCompliant(route ds.Route) bool {
	return ComplianceBalance(route) >= 0
}

// PercentDiff compares a route's intensity against the baseline, in percent.
func PercentDiff(route, baseline ds.Route) (float64, error) {
	if baseline.GhgIntensity == 0 {
		return 0, validationf("baseline route %d has zero GHG intensity", baseline.ID)
	}
	return (route.GhgIntensity - baseline.GhgIntensity) / baseline.GhgIntensity * 100, nil
}

// Round rounds half up to the nearest whole gCO2e.
func Round(v float64) float64 {
	return math.Floor(v + 0.5)
}

// round2 rounds to cents, halves away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
