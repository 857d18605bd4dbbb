package params

// FieldMeta describes how a parameter is presented and persisted alongside
// its value: display label, unit string, grouping category and whether the
// value is a percentage.
type FieldMeta struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Unit     string `json:"unit"`
	Category string `json:"category"`
	Percent  bool   `json:"is_percent,omitempty"`
}

// Metadata returns the presentation metadata for every parameter, in
// document order. The key column matches ParameterSet JSON keys and the keys
// accepted by Apply.
func Metadata() []FieldMeta {
	return []FieldMeta{
		{Key: "years", Label: "Time Horizon", Unit: "yr", Category: "system"},
		{Key: "targetGW", Label: "Target IT Power", Unit: "GW", Category: "system"},

		{Key: "launchCostPerKg", Label: "Launch Cost to LEO", Unit: "$/kg", Category: "orbital"},
		{Key: "satelliteCostPerW", Label: "Satellite Hardware Cost", Unit: "$/W", Category: "orbital"},
		{Key: "specificPowerWPerKg", Label: "Specific Power", Unit: "W/kg", Category: "orbital"},
		{Key: "satellitePowerKW", Label: "Satellite Unit Power", Unit: "kW", Category: "orbital"},
		{Key: "sunFraction", Label: "Sunlit Fraction of Orbit", Unit: "", Category: "orbital"},
		{Key: "cellDegradation", Label: "Cell Degradation", Unit: "%/yr", Category: "orbital", Percent: true},
		{Key: "gpuFailureRate", Label: "Accelerator Failure Rate", Unit: "%/yr", Category: "orbital", Percent: true},
		{Key: "nreCost", Label: "Non-Recurring Engineering", Unit: "$M", Category: "orbital"},

		{Key: "gasTurbineCapexPerKW", Label: "Gas Turbine Capex", Unit: "$/kW", Category: "natgas"},
		{Key: "electricalCostPerW", Label: "Electrical Infrastructure", Unit: "$/W", Category: "natgas"},
		{Key: "mechanicalCostPerW", Label: "Mechanical Infrastructure", Unit: "$/W", Category: "natgas"},
		{Key: "civilCostPerW", Label: "Civil / Shell", Unit: "$/W", Category: "natgas"},
		{Key: "networkCostPerW", Label: "Network / Fiber", Unit: "$/W", Category: "natgas"},
		{Key: "pue", Label: "Power Usage Effectiveness", Unit: "", Category: "natgas"},
		{Key: "gasPricePerMMBtu", Label: "Natural Gas Price", Unit: "$/MMBtu", Category: "natgas"},
		{Key: "heatRateBtuKwh", Label: "Heat Rate", Unit: "BTU/kWh", Category: "natgas"},
		{Key: "capacityFactor", Label: "Capacity Factor", Unit: "", Category: "natgas"},

		{Key: "solarAbsorptivity", Label: "Solar Absorptivity (PV face)", Unit: "", Category: "thermal"},
		{Key: "emissivityPV", Label: "IR Emissivity (PV face)", Unit: "", Category: "thermal"},
		{Key: "emissivityRad", Label: "IR Emissivity (radiator face)", Unit: "", Category: "thermal"},
		{Key: "pvEfficiency", Label: "PV Electrical Efficiency", Unit: "", Category: "thermal"},
		{Key: "betaAngle", Label: "Orbit Beta Angle", Unit: "°", Category: "thermal"},
		{Key: "altitudeKm", Label: "Orbital Altitude", Unit: "km", Category: "thermal"},
		{Key: "maxDieTempC", Label: "Max Die Temperature", Unit: "°C", Category: "thermal"},
		{Key: "tempDropC", Label: "Die-to-Radiator Temp Drop", Unit: "°C", Category: "thermal"},
	}
}
