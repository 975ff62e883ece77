// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	// CameraHeight is the number of world units visible vertically.
	CameraHeight = 20.0

	MaxTankSpeed       = 2.0   // units per second
	TankAcceleration   = 6.0   // units per second^2
	TankBraking        = 4.0   // units per second^2
	TankRotateRateDegs = 140.0 // degrees per second
	TankHalfExtent     = 0.5

	GunRotateRateDegs = 220.0 // degrees per second
	DefaultMaxAmmo    = 5
	ReloadInterval    = time.Second // per round

	BulletShootSpeed = 18.0
	BulletHalfExtent = 0.1
	BulletMaxStep    = 0.25 // units travelled between collision checks

	MaxWallLength = 6
	SpawnTries    = 1000

	KillFeedLength = 4
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	AirColor        = color.RGBA{70, 100, 120, 220}
	WallColor       = color.RGBA{150, 70, 70, 255}
	PlayerColor     = color.RGBA{50, 205, 50, 255}
	EnemyColor      = color.RGBA{220, 60, 60, 255}
	GunColor        = color.RGBA{240, 240, 240, 255}
	BulletColor     = color.RGBA{255, 215, 0, 255}
	PathColor       = color.RGBA{255, 255, 0, 160}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
)
