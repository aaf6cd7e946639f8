//Package vector provides the 3D vector used to keep the position of a pellet.
//
//X is the distance downrange, Y is the drop below the line of departure and
//Z is the drift across the line of departure.
package vector

import "fmt"

//Vector is a position in feet
type Vector struct {
	X float64
	Y float64
	Z float64
}

//String formats the coordinates
func (v Vector) String() string {
	return fmt.Sprintf("[X=%f,Y=%f,Z=%f]", v.X, v.Y, v.Z)
}

//Create creates a vector from its coordinates
func Create(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

//MultiplyByConst scales every coordinate by a
func (v Vector) MultiplyByConst(a float64) Vector {
	return Create(a*v.X, a*v.Y, a*v.Z)
}

//Add returns the sum of the vectors
func (v Vector) Add(b Vector) Vector {
	return Create(v.X+b.X, v.Y+b.Y, v.Z+b.Z)
}

//WithY returns a copy of the vector with the Y coordinate replaced
func (v Vector) WithY(y float64) Vector {
	return Create(v.X, y, v.Z)
}
