package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/powersat/orbitalcost/pkg/breakeven"
	"github.com/powersat/orbitalcost/pkg/orbital"
	"github.com/powersat/orbitalcost/pkg/sweep"
	"github.com/powersat/orbitalcost/pkg/terrestrial"
	"github.com/powersat/orbitalcost/pkg/thermal"
	"github.com/powersat/orbitalcost/pkg/types"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printComparison(w io.Writer, orb orbital.Result, terr terrestrial.Result) {
	tw := newTable(w)

	fmt.Fprintln(tw, "ORBITAL\t")
	fmt.Fprintf(tw, "  satellites\t%d\n", orb.SatelliteCount)
	fmt.Fprintf(tw, "  launches\t%d\n", orb.LaunchVehicleCount)
	fmt.Fprintf(tw, "  fleet mass\t%s\n", types.Kilograms(orb.TotalMassKg).Humanized())
	fmt.Fprintf(tw, "  array area\t%.2f km²\n", orb.ArrayAreaKm2)
	fmt.Fprintf(tw, "  initial power\t%s\n", types.Watts(orb.ActualInitialPowerW).Humanized())
	fmt.Fprintf(tw, "  hardware\t%s\n", types.Dollars(orb.HardwareCost).Humanized())
	fmt.Fprintf(tw, "  launch\t%s\n", types.Dollars(orb.LaunchCost).Humanized())
	fmt.Fprintf(tw, "  operations\t%s\n", types.Dollars(orb.OpsCost).Humanized())
	fmt.Fprintf(tw, "  replacements\t%s\n", types.Dollars(orb.ReplacementCost).Humanized())
	fmt.Fprintf(tw, "  NRE\t%s\n", types.Dollars(orb.NRECost).Humanized())
	fmt.Fprintf(tw, "  total\t%s\n", types.Dollars(orb.TotalCost).Humanized())
	fmt.Fprintf(tw, "  cost per W\t$%.2f\n", orb.CostPerW)
	fmt.Fprintf(tw, "  LCOE\t$%.2f/MWh\n", orb.LCOE)
	fmt.Fprintln(tw, "\t")

	fmt.Fprintln(tw, "TERRESTRIAL\t")
	fmt.Fprintf(tw, "  turbines\t%d\n", terr.TurbineCount)
	fmt.Fprintf(tw, "  land\t%.0f acres\n", terr.LandAcres)
	fmt.Fprintf(tw, "  infra capex\t%s\n", types.Dollars(terr.InfraCapex).Humanized())
	fmt.Fprintf(tw, "  fuel\t%s\n", types.Dollars(terr.FuelCostTotal).Humanized())
	fmt.Fprintf(tw, "  gas burned\t%.1f BCF\n", terr.GasConsumptionBCF)
	fmt.Fprintf(tw, "  total\t%s\n", types.Dollars(terr.TotalCost).Humanized())
	fmt.Fprintf(tw, "  cost per W\t$%.2f\n", terr.CostPerW)
	fmt.Fprintf(tw, "  LCOE\t$%.2f/MWh\n", terr.LCOE)
	fmt.Fprintln(tw, "\t")

	tw.Flush()
}

func printThermal(w io.Writer, th thermal.Result) {
	tw := newTable(w)

	fmt.Fprintln(tw, "THERMAL\t")
	fmt.Fprintf(tw, "  view factor A/B\t%.4f / %.4f\n", th.VFSideA, th.VFSideB)
	fmt.Fprintf(tw, "  heat in\t%s\n", types.Watts(th.TotalHeatInW).Humanized())
	fmt.Fprintf(tw, "  generated\t%s\n", types.Watts(th.PowerGeneratedW).Humanized())
	fmt.Fprintf(tw, "  equilibrium\t%.1f °C\n", th.EqTempC)
	fmt.Fprintf(tw, "  radiator target\t%.1f °C\n", th.RadiatorTargetC)
	fmt.Fprintf(tw, "  margin\t%.1f °C\n", th.TempMarginC)
	verdict := "INSUFFICIENT"
	if th.AreaSufficient {
		verdict = "sufficient"
	}
	fmt.Fprintf(tw, "  area\t%.2f km² (%s, need %.2f km²)\n",
		th.AreaM2/1e6, verdict, th.AreaRequiredM2/1e6)

	tw.Flush()
}

func printBreakeven(w io.Writer, res breakeven.Result) {
	tw := newTable(w)

	fmt.Fprintln(tw, "BREAKEVEN\t")
	if res.Inconclusive {
		fmt.Fprintf(tw, "  result\tinconclusive (no crossing in search interval)\n")
	}
	fmt.Fprintf(tw, "  launch cost\t$%.0f/kg\n", res.LaunchCostPerKg)
	fmt.Fprintf(tw, "  iterations\t%d\n", res.Iterations)
	fmt.Fprintf(tw, "  orbital\t$%.2f/W\n", res.OrbitalCostPerW)
	fmt.Fprintf(tw, "  terrestrial\t$%.2f/W\n", res.TerrestrialCostPerW)

	tw.Flush()
}

func printSweep(w io.Writer, grid sweep.Grid, points []sweep.Point) {
	tw := newTable(w)

	for _, a := range grid.Axes {
		fmt.Fprintf(tw, "%s\t", a.Param)
	}
	fmt.Fprintln(tw, "orbital $/W\tterrestrial $/W\torbital LCOE\tterrestrial LCOE\t")

	for _, pt := range points {
		for _, a := range grid.Axes {
			fmt.Fprintf(tw, "%g\t", pt.Values[a.Param])
		}
		flag := ""
		if pt.Invalid {
			flag = " (!)"
		}
		fmt.Fprintf(tw, "%.2f\t%.2f\t%.2f\t%.2f%s\n",
			pt.Orbital.CostPerW, pt.Terrestrial.CostPerW,
			pt.Orbital.LCOE, pt.Terrestrial.LCOE, flag)
	}

	tw.Flush()
}
