package go_shotcalc_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/gehtsoft-usa/go_shotcalc"
	"github.com/gehtsoft-usa/go_shotcalc/bmath/unit"
)

func assertEqual(t *testing.T, a, b, accuracy float64, name string) {
	t.Helper()
	if math.Abs(a-b) > accuracy {
		t.Errorf("Assertion %s failed (%f/%f)", name, a, b)
	}
}

func standardLoad(t *testing.T, velocity, wind float64) (go_shotcalc.Pellet, go_shotcalc.LaunchConditions) {
	t.Helper()
	pellet, err := go_shotcalc.CreatePellet(go_shotcalc.Shot7Half.Diameter(), go_shotcalc.MaterialChilled.Density())
	if err != nil {
		t.Fatal(err)
	}
	launch, err := go_shotcalc.CreateLaunchConditions(unit.MustCreateVelocity(velocity, unit.VelocityFPS),
		unit.MustCreateVelocity(wind, unit.VelocityMPH))
	if err != nil {
		t.Fatal(err)
	}
	return pellet, launch
}

func TestPelletWeight(t *testing.T) {
	pellet, err := go_shotcalc.CreatePellet(unit.MustCreateDistance(0.095, unit.DistanceInch), 0.401)
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, pellet.Weight().In(unit.WeightGrain), 1.2601, 0.0005, "#7 1/2 chilled")
	if pellet.IsWeightOverridden() {
		t.Error("derived weight is reported as overridden")
	}

	for _, size := range go_shotcalc.ShotSizes() {
		for _, material := range go_shotcalc.ShotMaterials() {
			d := size.Diameter().In(unit.DistanceInch)
			expected := 4.0 / 3.0 * math.Pi * math.Pow(d/2, 3) * material.Density() * 7000
			got := go_shotcalc.PelletWeight(size.Diameter(), material.Density()).In(unit.WeightGrain)
			assertEqual(t, got, expected, expected*1e-12, size.String()+" "+material.String())
		}
	}

	buck := go_shotcalc.PelletWeight(go_shotcalc.Buck00.Diameter(), go_shotcalc.MaterialLead.Density())
	assertEqual(t, buck.In(unit.WeightGrain), 58.96, 0.01, "00 buck lead")
}

func TestPelletValidation(t *testing.T) {
	d := unit.MustCreateDistance(0.095, unit.DistanceInch)
	if _, err := go_shotcalc.CreatePellet(unit.MustCreateDistance(0, unit.DistanceInch), 0.401); err == nil {
		t.Error("zero diameter accepted")
	}
	if _, err := go_shotcalc.CreatePellet(d, 0); err == nil {
		t.Error("zero density accepted")
	}
	if _, err := go_shotcalc.CreatePelletWithWeight(d, 0.401, unit.MustCreateWeight(0, unit.WeightGrain)); err == nil {
		t.Error("zero weight accepted")
	}

	p, err := go_shotcalc.CreatePelletWithWeight(d, 0.401, unit.MustCreateWeight(2, unit.WeightGrain))
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsWeightOverridden() || p.Weight().In(unit.WeightGrain) != 2 {
		t.Error("weight override is lost")
	}
	assertEqual(t, p.CrossSectionalArea(), math.Pi*0.095*0.095/4, 1e-15, "Area")
}

func TestParseNames(t *testing.T) {
	sizes := map[string]go_shotcalc.ShotSize{
		"#7 1/2":  go_shotcalc.Shot7Half,
		"7½":      go_shotcalc.Shot7Half,
		"bb":      go_shotcalc.ShotBB,
		"00 Buck": go_shotcalc.Buck00,
		"#9":      go_shotcalc.Shot9,
	}
	for name, exp := range sizes {
		got, err := go_shotcalc.ParseShotSize(name)
		if err != nil || got != exp {
			t.Errorf("ParseShotSize(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := go_shotcalc.ParseShotSize("#12"); err == nil {
		t.Error("unknown size accepted")
	}

	m, err := go_shotcalc.ParseShotMaterial("tung iron")
	if err != nil || m != go_shotcalc.MaterialTungstenIron {
		t.Errorf("ParseShotMaterial = %v, %v", m, err)
	}
	if _, err := go_shotcalc.ParseShotMaterial("gold"); err == nil {
		t.Error("unknown material accepted")
	}
	if len(go_shotcalc.ShotSizes()) != 21 || len(go_shotcalc.ShotMaterials()) != 11 {
		t.Error("unexpected enumeration size")
	}
}

func TestRelativeDensity(t *testing.T) {
	seaLevel := unit.MustCreateDistance(0, unit.DistanceFoot)
	if d := go_shotcalc.RelativeDensity(seaLevel, unit.MustCreateTemperature(70, unit.TemperatureFahrenheit)); d != 1.0 {
		t.Errorf("sea level density is %.17f", d)
	}
	if d := go_shotcalc.CreateDefaultAtmosphere().RelativeDensity(); d != 1.0 {
		t.Errorf("default atmosphere density is %.17f", d)
	}

	alt := unit.MustCreateDistance(5000, unit.DistanceFoot)
	assertEqual(t, go_shotcalc.StandardTemperatureAt(alt).In(unit.TemperatureFahrenheit), 52.25, 1e-9, "Lapsed temperature")
	assertEqual(t, go_shotcalc.RelativeDensity(alt, unit.MustCreateTemperature(40, unit.TemperatureFahrenheit)), 0.852164, 1e-6, "5000ft 40F")

	cold, _ := go_shotcalc.CreateAtmosphere(seaLevel, unit.MustCreateTemperature(-10, unit.TemperatureFahrenheit))
	hot, _ := go_shotcalc.CreateAtmosphere(seaLevel, unit.MustCreateTemperature(120, unit.TemperatureFahrenheit))
	if cold.RelativeDensity() <= 1 || hot.RelativeDensity() >= 1 {
		t.Error("temperature correction has the wrong sign")
	}

	high, err := go_shotcalc.CreateStandardAtmosphere(unit.MustCreateDistance(10000, unit.DistanceFoot))
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, high.Temperature().In(unit.TemperatureFahrenheit), 34.5, 1e-9, "Standard temperature")
	assertEqual(t, high.Pressure().In(unit.PressurePSI), high.RelativeDensity()*14.7, 1e-9, "Pressure")
}

func TestAtmosphereValidation(t *testing.T) {
	f70 := unit.MustCreateTemperature(70, unit.TemperatureFahrenheit)
	if _, err := go_shotcalc.CreateAtmosphere(unit.MustCreateDistance(-1, unit.DistanceFoot), f70); err == nil {
		t.Error("negative altitude accepted")
	}
	if _, err := go_shotcalc.CreateAtmosphere(unit.MustCreateDistance(200000, unit.DistanceFoot), f70); err == nil {
		t.Error("altitude beyond the model accepted")
	}
	if _, err := go_shotcalc.CreateAtmosphere(unit.MustCreateDistance(0, unit.DistanceFoot),
		unit.MustCreateTemperature(-500, unit.TemperatureFahrenheit)); err == nil {
		t.Error("temperature below absolute zero accepted")
	}

	choices := go_shotcalc.AltitudeChoices()
	if len(choices) != 21 || choices[0].In(unit.DistanceFoot) != 0 || choices[20].In(unit.DistanceFoot) != 10000 {
		t.Errorf("unexpected altitude choices %v", choices)
	}
	if go_shotcalc.AltitudeChoiceName(choices[0]) != "Sea Level" || go_shotcalc.AltitudeChoiceName(choices[3]) != "1500" {
		t.Error("unexpected altitude names")
	}
}

func TestRetardation(t *testing.T) {
	segments := []struct {
		limit, exponent, factor float64
	}{
		{840, 1.6, 74422e-8},
		{1040, 3.0, 59939e-12},
		{1190, 6.45, 23385e-22},
		{1460, 3.0, 95408e-12},
		{2000, 1.8, 59814e-8},
		{2600, 1.5, 58497e-7},
		{4000, 1.67, 15366e-7},
	}

	var low float64
	for _, s := range segments {
		for _, v := range []float64{low + 1, (low + s.limit) / 2, s.limit} {
			if got, exp := go_shotcalc.Retardation(v), math.Pow(v, s.exponent)*s.factor; got != exp {
				t.Errorf("Retardation(%f) = %g, want %g", v, got, exp)
			}
		}
		low = s.limit
	}

	//the fit is not continuous at the limits
	if go_shotcalc.Retardation(840) == go_shotcalc.Retardation(math.Nextafter(840, 1000)) {
		t.Error("840 fps must select the lower segment")
	}
}

func TestTrajectoryReference(t *testing.T) {
	pellet, launch := standardLoad(t, 1350, 0)
	calc := go_shotcalc.CreateTrajectoryCalculator()
	result := calc.Trajectory(pellet, launch, go_shotcalc.CreateDefaultAtmosphere())

	assertEqual(t, float64(result.Len()), 117, 0.1, "Length")
	assertEqual(t, float64(result.EffectiveRange()), 44, 0.1, "Effective range")
	assertEqual(t, result.MinimumVelocity().In(unit.VelocityFPS), 597.875, 0.01, "Minimum velocity")

	first, _ := result.At(0)
	assertEqual(t, first.Velocity().In(unit.VelocityFPS), 1350, 1e-9, "Muzzle velocity")
	assertEqual(t, first.Time().TotalSeconds(), 0, 1e-12, "Muzzle time")

	at40, ok := result.At(40)
	if !ok {
		t.Fatal("no data at 40 yards")
	}
	assertEqual(t, at40.Velocity().In(unit.VelocityFPS), 641.85, 1, "Velocity")
	assertEqual(t, at40.Drop().In(unit.DistanceInch), 3.676, 0.1, "Drop")
	assertEqual(t, at40.Time().TotalSeconds(), 0.138, 0.0015, "Time")
	assertEqual(t, at40.Energy().In(unit.EnergyFootPound), 1.153, 0.005, "Energy")
	assertEqual(t, at40.TravelledDistance().In(unit.DistanceYard), 40, 1, "Distance")
	if at40.DropAdjustment().In(unit.AngularMOA) <= 0 {
		t.Error("drop adjustment must be positive")
	}

	at10, _ := result.At(10)
	assertEqual(t, at10.Velocity().In(unit.VelocityFPS), 1029.67, 1, "Velocity 10")

	if _, ok := result.At(result.Len()); ok {
		t.Error("data beyond the last yard")
	}
	if _, ok := result.At(-1); ok {
		t.Error("data before the muzzle")
	}
}

func TestTrajectoryInvariants(t *testing.T) {
	calc := go_shotcalc.CreateTrajectoryCalculator()
	for _, velocity := range []float64{100, 500, 1350, 2200, 4000} {
		pellet, launch := standardLoad(t, velocity, 0)
		result := calc.Trajectory(pellet, launch, go_shotcalc.CreateDefaultAtmosphere())

		if result.Len() > go_shotcalc.MaximumSamples {
			t.Errorf("%.0f fps: %d samples", velocity, result.Len())
		}
		var previous float64 = math.Inf(1)
		for i, data := range result.Samples() {
			if data.Yard() != i {
				t.Fatalf("%.0f fps: yard %d at index %d", velocity, data.Yard(), i)
			}
			if data.Drift().In(unit.DistanceInch) != 0 {
				t.Errorf("%.0f fps: drift without wind at yard %d", velocity, i)
			}
			v := data.Velocity().In(unit.VelocityFPS)
			if v > previous {
				t.Errorf("%.0f fps: velocity grows at yard %d", velocity, i)
			}
			previous = v
			if data.Time().TotalSeconds() >= 1 {
				t.Errorf("%.0f fps: flight longer than a second", velocity)
			}
		}
	}
}

func TestTrajectoryStopsWhenPelletStops(t *testing.T) {
	//a one grain ball an inch across loses all forward velocity in the first step
	pellet, err := go_shotcalc.CreatePelletWithWeight(unit.MustCreateDistance(1, unit.DistanceInch),
		go_shotcalc.MaterialLead.Density(), unit.MustCreateWeight(1, unit.WeightGrain))
	if err != nil {
		t.Fatal(err)
	}
	calc := go_shotcalc.CreateTrajectoryCalculator()
	for _, wind := range []float64{0, 60} {
		launch, err := go_shotcalc.CreateLaunchConditions(unit.MustCreateVelocity(4000, unit.VelocityFPS),
			unit.MustCreateVelocity(wind, unit.VelocityMPH))
		if err != nil {
			t.Fatal(err)
		}
		result := calc.Trajectory(pellet, launch, go_shotcalc.CreateDefaultAtmosphere())

		assertEqual(t, float64(result.Len()), 1, 0.1, "Length")
		assertEqual(t, float64(result.EffectiveRange()), 0, 0.1, "Effective range")
		for i, data := range result.Samples() {
			if data.Yard() != i {
				t.Fatalf("%.0f mph: yard %d at index %d", wind, data.Yard(), i)
			}
			for name, v := range map[string]float64{
				"velocity": data.Velocity().In(unit.VelocityFPS),
				"drop":     data.Drop().In(unit.DistanceInch),
				"drift":    data.Drift().In(unit.DistanceInch),
			} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Errorf("%.0f mph: %s at yard %d is %f", wind, name, i, v)
				}
			}
		}
		first, _ := result.At(0)
		assertEqual(t, first.Velocity().In(unit.VelocityFPS), 4000, 1, "Velocity at the muzzle")
	}
}

func TestEffectiveRangeEdges(t *testing.T) {
	calc := go_shotcalc.CreateTrajectoryCalculator()

	pellet, launch := standardLoad(t, 500, 0)
	slow := calc.Trajectory(pellet, launch, go_shotcalc.CreateDefaultAtmosphere())
	if slow.EffectiveRange() != go_shotcalc.NoEffectiveRange {
		t.Errorf("pellet below the minimum velocity has effective range %d", slow.EffectiveRange())
	}

	pellet, launch = standardLoad(t, 4000, 0)
	fast := calc.Trajectory(pellet, launch, go_shotcalc.CreateDefaultAtmosphere())
	assertEqual(t, float64(fast.Len()), 147, 0.1, "Length")
	assertEqual(t, float64(fast.EffectiveRange()), 75, 0.1, "Effective range")

	//heavy buckshot keeps energy for the whole second of flight
	buck, _ := go_shotcalc.CreatePellet(go_shotcalc.Buck4.Diameter(), go_shotcalc.MaterialLead.Density())
	launch, _ = go_shotcalc.CreateNoWindLaunch(unit.MustCreateVelocity(1200, unit.VelocityFPS))
	result := calc.Trajectory(buck, launch, go_shotcalc.CreateDefaultAtmosphere())
	if result.EffectiveRange() != result.Len()-1 {
		t.Errorf("effective range %d, last yard %d", result.EffectiveRange(), result.Len()-1)
	}
	at40, _ := result.At(40)
	assertEqual(t, at40.Velocity().In(unit.VelocityFPS), 887.89, 1, "Buckshot velocity")
}

func TestTrajectoryWind(t *testing.T) {
	pellet, launch := standardLoad(t, 1350, 10)
	result := go_shotcalc.CreateTrajectoryCalculator().Trajectory(pellet, launch, go_shotcalc.CreateDefaultAtmosphere())

	assertEqual(t, float64(result.Len()), 118, 0.1, "Length")
	assertEqual(t, float64(result.EffectiveRange()), 44, 0.1, "Effective range")

	first, _ := result.At(0)
	assertEqual(t, first.Velocity().In(unit.VelocityFPS), 1350.08, 0.01, "Air velocity at the muzzle")

	at10, _ := result.At(10)
	at40, _ := result.At(40)
	assertEqual(t, at10.Drift().In(unit.DistanceInch), 0.662, 0.05, "Drift 10")
	assertEqual(t, at40.Drift().In(unit.DistanceInch), 8.675, 0.1, "Drift 40")
	assertEqual(t, at40.Velocity().In(unit.VelocityFPS), 647.40, 1, "Velocity 40")
	if at40.DriftAdjustment().In(unit.AngularMOA) <= at10.DriftAdjustment().In(unit.AngularMOA) {
		t.Error("drift angle must grow with the range")
	}
}

func TestTrajectoryAltitude(t *testing.T) {
	pellet, launch := standardLoad(t, 1350, 0)
	atmosphere, err := go_shotcalc.CreateAtmosphere(unit.MustCreateDistance(5000, unit.DistanceFoot),
		unit.MustCreateTemperature(40, unit.TemperatureFahrenheit))
	if err != nil {
		t.Fatal(err)
	}
	result := go_shotcalc.CreateTrajectoryCalculator().Trajectory(pellet, launch, atmosphere)
	assertEqual(t, float64(result.Len()), 130, 0.1, "Length")
	assertEqual(t, float64(result.EffectiveRange()), 52, 0.1, "Effective range")
	at40, _ := result.At(40)
	assertEqual(t, at40.Velocity().In(unit.VelocityFPS), 705.23, 1, "Velocity 40")
}

func TestBallisticCoefficient(t *testing.T) {
	pellet, launch := standardLoad(t, 1350, 0)
	calc := go_shotcalc.CreateTrajectoryCalculator()
	if calc.BallisticCoefficient() != 1 {
		t.Errorf("default ballistic coefficient %f", calc.BallisticCoefficient())
	}
	if err := calc.SetBallisticCoefficient(0); err == nil {
		t.Error("zero ballistic coefficient accepted")
	}
	base := calc.Trajectory(pellet, launch, go_shotcalc.CreateDefaultAtmosphere())

	if err := calc.SetBallisticCoefficient(2); err != nil {
		t.Fatal(err)
	}
	better := calc.Trajectory(pellet, launch, go_shotcalc.CreateDefaultAtmosphere())

	b, _ := base.At(40)
	s, _ := better.At(40)
	if s.Velocity().In(unit.VelocityFPS) <= b.Velocity().In(unit.VelocityFPS) {
		t.Error("larger ballistic coefficient must keep more velocity")
	}
	if better.EffectiveRange() <= base.EffectiveRange() {
		t.Error("larger ballistic coefficient must extend the effective range")
	}
}

func TestTrajectoryDeterminism(t *testing.T) {
	pellet, launch := standardLoad(t, 1350, 15)
	calc := go_shotcalc.CreateTrajectoryCalculator()
	a := calc.Trajectory(pellet, launch, go_shotcalc.CreateDefaultAtmosphere())
	b := calc.Trajectory(pellet, launch, go_shotcalc.CreateDefaultAtmosphere())
	if !reflect.DeepEqual(a, b) {
		t.Error("two runs with the same input differ")
	}

	samples := a.Samples()
	samples[0] = go_shotcalc.TrajectoryData{}
	if first, _ := a.At(0); first.Velocity().In(unit.VelocityFPS) == 0 {
		t.Error("Samples must return a copy")
	}
}

func TestTrajectoryPreconditions(t *testing.T) {
	calc := go_shotcalc.CreateTrajectoryCalculator()
	pellet, launch := standardLoad(t, 1350, 0)

	cases := map[string]func(){
		"pellet": func() {
			calc.Trajectory(go_shotcalc.Pellet{}, launch, go_shotcalc.CreateDefaultAtmosphere())
		},
		"launch": func() {
			calc.Trajectory(pellet, go_shotcalc.LaunchConditions{}, go_shotcalc.CreateDefaultAtmosphere())
		},
		"atmosphere": func() {
			calc.Trajectory(pellet, launch, go_shotcalc.Atmosphere{})
		},
	}
	for name, f := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("no panic")
				}
			}()
			f()
		})
	}

	if _, err := go_shotcalc.CreateLaunchConditions(unit.MustCreateVelocity(0, unit.VelocityFPS),
		unit.MustCreateVelocity(0, unit.VelocityMPH)); err == nil {
		t.Error("zero muzzle velocity accepted")
	}
	if _, err := go_shotcalc.CreateLaunchConditions(unit.MustCreateVelocity(1000, unit.VelocityFPS),
		unit.MustCreateVelocity(-1, unit.VelocityMPH)); err == nil {
		t.Error("negative wind accepted")
	}
}

func TestEnergy(t *testing.T) {
	weight := unit.MustCreateWeight(1, unit.WeightGrain)
	minimum := go_shotcalc.MinimumEffectiveVelocity(weight)
	assertEqual(t, go_shotcalc.Energy(weight, minimum).In(unit.EnergyFootPound), 1, 1e-9, "Energy at minimum velocity")
	assertEqual(t, go_shotcalc.Energy(unit.MustCreateWeight(7000, unit.WeightGrain),
		unit.MustCreateVelocity(32.174*2, unit.VelocityFPS)).In(unit.EnergyFootPound), 64.348, 1e-9, "One pound")
}
