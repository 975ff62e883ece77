// internal/component/tank.go
package component

// TankBody is the chassis of a tank. Tanks only move along their heading;
// Speed is positive forward, and |Speed| never exceeds config.MaxTankSpeed
// after an update.
type TankBody struct {
	Orientation      float64 // radians, world frame
	Speed            float64
	Name             string
	PlayerControlled bool
}
