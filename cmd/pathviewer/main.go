// cmd/pathviewer/main.go
//
// Debug tool: renders the level's enemy path and build grid in 3D so lane
// layouts can be eyeballed before they ship. Not part of the game binary.
package main

import (
	"elemental-td/pkg/geom"
	"elemental-td/pkg/grid"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func vec3(v geom.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

// vector3Lerp performs linear interpolation between two vectors.
func vector3Lerp(v1, v2 rl.Vector3, t float32) rl.Vector3 {
	return rl.Vector3Add(v1, rl.Vector3Scale(rl.Vector3Subtract(v2, v1), t))
}

func main() {
	const screenWidth = 1280
	const screenHeight = 720
	backgroundColor := rl.NewColor(10, 10, 20, 255)

	rl.InitWindow(screenWidth, screenHeight, "Path Viewer | Q/E - Rotate, Mouse Wheel - Change Angle")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	camera := rl.Camera3D{}
	camera.Up = rl.NewVector3(0, 1, 0)
	camera.Projection = rl.CameraPerspective

	isoPos := rl.NewVector3(20, 25, 25)
	topDownPos := rl.NewVector3(0, 45, 0.1)
	target := rl.NewVector3(0, 0, 0)
	isoFovy := float32(55.0)
	topDownFovy := float32(35.0)
	cameraAngleT := float32(0.4)

	level := grid.DefaultLevel()
	path := level.Path()

	for !rl.WindowShouldClose() {
		if rl.IsKeyDown(rl.KeyQ) {
			isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, -0.02)
		}
		if rl.IsKeyDown(rl.KeyE) {
			isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, 0.02)
		}

		wheel := rl.GetMouseWheelMove()
		if wheel != 0 {
			cameraAngleT += wheel * 0.05
			if cameraAngleT > 0.99 {
				cameraAngleT = 0.99
			} else if cameraAngleT < 0.0 {
				cameraAngleT = 0.0
			}
		}

		camera.Position = vector3Lerp(isoPos, topDownPos, cameraAngleT)
		camera.Target = target
		camera.Fovy = isoFovy + (topDownFovy-isoFovy)*cameraAngleT

		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)
		rl.BeginMode3D(camera)

		// Build grid: buildable cells dark, blocked (too close to the
		// path) reddish.
		for col := 0; col < level.Cols; col++ {
			for row := 0; row < level.Rows; row++ {
				cell := grid.Cell{Col: col, Row: row}
				center := level.CellCenter(cell)
				c := rl.NewColor(40, 45, 60, 255)
				if !level.CanPlace(cell) {
					c = rl.NewColor(90, 50, 50, 255)
				}
				rl.DrawCube(vec3(center), float32(level.CellSize)*0.9, 0.1, float32(level.CellSize)*0.9, c)
			}
		}

		// Path polyline with waypoint markers.
		for i := 0; i+1 < len(path); i++ {
			rl.DrawLine3D(vec3(path[i]), vec3(path[i+1]), rl.SkyBlue)
		}
		for i, wp := range path {
			c := rl.Yellow
			if i == 0 {
				c = rl.Green
			} else if i == len(path)-1 {
				c = rl.Red
			}
			rl.DrawSphere(vec3(wp), 0.3, c)
		}

		rl.EndMode3D()
		rl.DrawText("Q/E rotate, wheel tilts camera", 10, 10, 20, rl.RayWhite)
		rl.EndDrawing()
	}
}
