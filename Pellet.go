package go_shotcalc

import (
	"fmt"
	"math"
	"strings"

	"github.com/gehtsoft-usa/go_shotcalc/bmath/unit"
)

const cGrainsPerPound float64 = 7000

//ShotSize is one of the standard shot and buckshot sizes
type ShotSize byte

const (
	Shot11 ShotSize = iota
	Shot10
	Shot9Half
	Shot9
	Shot8Half
	Shot8
	Shot7Half
	Shot7
	Shot6
	Shot5
	Shot4
	Shot3
	Shot2
	Shot1
	ShotBB
	Buck4
	Buck3
	Buck1
	Buck0
	Buck00
	Buck000
)

type shotSizeInfo struct {
	name     string
	diameter float64 //inches
}

var shotSizes = []shotSizeInfo{
	Shot11:    {"#11", 0.062},
	Shot10:    {"#10", 0.070},
	Shot9Half: {"#9 1/2", 0.075},
	Shot9:     {"#9", 0.080},
	Shot8Half: {"#8 1/2", 0.085},
	Shot8:     {"#8", 0.090},
	Shot7Half: {"#7 1/2", 0.095},
	Shot7:     {"#7", 0.10},
	Shot6:     {"#6", 0.11},
	Shot5:     {"#5", 0.12},
	Shot4:     {"#4", 0.13},
	Shot3:     {"#3", 0.14},
	Shot2:     {"#2", 0.15},
	Shot1:     {"#1", 0.16},
	ShotBB:    {"BB", 0.177},
	Buck4:     {"4 Buck", 0.24},
	Buck3:     {"3 Buck", 0.25},
	Buck1:     {"1 Buck", 0.30},
	Buck0:     {"0 Buck", 0.32},
	Buck00:    {"00 Buck", 0.34},
	Buck000:   {"000 Buck", 0.36},
}

//ShotSizes returns all known shot sizes from the smallest to the largest
func ShotSizes() []ShotSize {
	r := make([]ShotSize, len(shotSizes))
	for i := range shotSizes {
		r[i] = ShotSize(i)
	}
	return r
}

//Diameter returns the nominal diameter of the pellet
func (s ShotSize) Diameter() unit.Distance {
	return unit.MustCreateDistance(shotSizes[s].diameter, unit.DistanceInch)
}

func (s ShotSize) String() string {
	if int(s) >= len(shotSizes) {
		return fmt.Sprintf("ShotSize(%d)", byte(s))
	}
	return shotSizes[s].name
}

//ParseShotSize finds the shot size by its name.
//
//The name is matched ignoring case, spaces and the leading "#",
//so "7 1/2", "#7 1/2" and "7½" all mean the same size.
func ParseShotSize(name string) (ShotSize, error) {
	key := normalizeName(name)
	for i, s := range shotSizes {
		if normalizeName(s.name) == key {
			return ShotSize(i), nil
		}
	}
	return 0, fmt.Errorf("ShotSize: unknown shot size %q", name)
}

//ShotMaterial is one of the known pellet materials
type ShotMaterial byte

const (
	MaterialSteel ShotMaterial = iota
	MaterialBismuth
	MaterialTungstenIron
	MaterialTungstenMatrix
	MaterialHard
	MaterialChilled
	MaterialHeviShot
	MaterialLead
	MaterialCastIron
	MaterialZinc
	MaterialAluminum
)

type shotMaterialInfo struct {
	name    string
	density float64 //lb/cu.in.
}

var shotMaterials = []shotMaterialInfo{
	MaterialSteel:          {"Steel", 0.284},
	MaterialBismuth:        {"Bismuth", 0.347},
	MaterialTungstenIron:   {"Tung-Iron", 0.372},
	MaterialTungstenMatrix: {"Tung-Mtx", 0.383},
	MaterialHard:           {"Hard", 0.393},
	MaterialChilled:        {"Chilled", 0.401},
	MaterialHeviShot:       {"Hevi-Shot", 0.433},
	MaterialLead:           {"Lead", 0.4093},
	MaterialCastIron:       {"Cast Iron", 0.2529},
	MaterialZinc:           {"Zinc", 0.2578},
	MaterialAluminum:       {"Aluminum", 0.09798},
}

//ShotMaterials returns all known materials
func ShotMaterials() []ShotMaterial {
	r := make([]ShotMaterial, len(shotMaterials))
	for i := range shotMaterials {
		r[i] = ShotMaterial(i)
	}
	return r
}

//Density returns the density of the material in pounds per cubic inch
func (m ShotMaterial) Density() float64 {
	return shotMaterials[m].density
}

func (m ShotMaterial) String() string {
	if int(m) >= len(shotMaterials) {
		return fmt.Sprintf("ShotMaterial(%d)", byte(m))
	}
	return shotMaterials[m].name
}

//ParseShotMaterial finds the material by its name ignoring case, spaces and dashes
func ParseShotMaterial(name string) (ShotMaterial, error) {
	key := normalizeName(name)
	for i, m := range shotMaterials {
		if normalizeName(m.name) == key {
			return ShotMaterial(i), nil
		}
	}
	return 0, fmt.Errorf("ShotMaterial: unknown material %q", name)
}

var nameReplacer = strings.NewReplacer("#", "", " ", "", "-", "", "_", "", "½", "1/2")

func normalizeName(name string) string {
	return strings.ToLower(nameReplacer.Replace(strings.TrimSpace(name)))
}

//PelletWeight calculates the weight of a solid sphere of the diameter specified
//made of the material with the density (lb/cu.in.) specified
func PelletWeight(diameter unit.Distance, density float64) unit.Weight {
	var radius = diameter.In(unit.DistanceInch) / 2
	var volume = radius * radius * radius * math.Pi * 4.0 / 3.0
	return unit.MustCreateWeight(volume*density*cGrainsPerPound, unit.WeightGrain)
}

//Pellet keeps description of a round ball
type Pellet struct {
	diameter       unit.Distance
	density        float64
	weight         unit.Weight
	weightOverride bool
}

//CreatePellet creates the description of a pellet with the weight derived
//from the diameter and the density (lb/cu.in.) of the material
func CreatePellet(diameter unit.Distance, density float64) (Pellet, error) {
	if err := checkPelletGeometry(diameter, density); err != nil {
		return Pellet{}, err
	}
	return Pellet{
		diameter: diameter,
		density:  density,
		weight:   PelletWeight(diameter, density),
	}, nil
}

//CreatePelletWithWeight creates the description of a pellet which weight
//is set directly instead of being calculated from the diameter and the density
func CreatePelletWithWeight(diameter unit.Distance, density float64, weight unit.Weight) (Pellet, error) {
	if err := checkPelletGeometry(diameter, density); err != nil {
		return Pellet{}, err
	}
	if weight.In(unit.WeightGrain) <= 0 {
		return Pellet{}, fmt.Errorf("Pellet: weight must be greater than zero")
	}
	return Pellet{
		diameter:       diameter,
		density:        density,
		weight:         weight,
		weightOverride: true,
	}, nil
}

//MustCreatePellet creates the pellet but panics instead of returned a error
func MustCreatePellet(diameter unit.Distance, density float64) Pellet {
	p, err := CreatePellet(diameter, density)
	if err != nil {
		panic(err)
	}
	return p
}

func checkPelletGeometry(diameter unit.Distance, density float64) error {
	if diameter.In(unit.DistanceInch) <= 0 {
		return fmt.Errorf("Pellet: diameter must be greater than zero")
	}
	if density <= 0 {
		return fmt.Errorf("Pellet: density must be greater than zero")
	}
	return nil
}

//Diameter returns the diameter of the pellet
func (v Pellet) Diameter() unit.Distance {
	return v.diameter
}

//Density returns the density of the pellet material in pounds per cubic inch
func (v Pellet) Density() float64 {
	return v.density
}

//Weight returns the weight of the pellet
func (v Pellet) Weight() unit.Weight {
	return v.weight
}

//IsWeightOverridden returns the flag indicating whether the weight was set directly
//and therefore may not match the diameter and the density
func (v Pellet) IsWeightOverridden() bool {
	return v.weightOverride
}

//CrossSectionalArea returns the area of the pellet cross section in square inches
func (v Pellet) CrossSectionalArea() float64 {
	var d = v.diameter.In(unit.DistanceInch)
	return math.Pi * d * d / 4.0
}

func (v Pellet) String() string {
	return fmt.Sprintf("Diameter:%s,Density:%.4f,Weight:%s", v.diameter, v.density, v.weight)
}
