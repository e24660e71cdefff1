package dashboard

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"

	"studydash/internal/worldclock"
)

const faceSize = 200

// analogFace draws a clock face with three hands.
type analogFace struct {
	root   *fyne.Container
	hour   *canvas.Line
	minute *canvas.Line
	second *canvas.Line
}

func newAnalogFace() *analogFace {
	face := canvas.NewCircle(color.Transparent)
	face.StrokeColor = theme.Color(theme.ColorNameForeground)
	face.StrokeWidth = 3
	face.Resize(fyne.NewSize(faceSize, faceSize))

	objects := []fyne.CanvasObject{face}
	for i := 0; i < 12; i++ {
		mark := canvas.NewLine(theme.Color(theme.ColorNameForeground))
		mark.StrokeWidth = 2
		angle := float64(i) * 30
		mark.Position1 = handPoint(angle, faceSize/2-14)
		mark.Position2 = handPoint(angle, faceSize/2-4)
		objects = append(objects, mark)
	}

	analog := &analogFace{
		hour:   hand(6, theme.Color(theme.ColorNameForeground)),
		minute: hand(4, theme.Color(theme.ColorNameForeground)),
		second: hand(2, theme.Color(theme.ColorNamePrimary)),
	}
	objects = append(objects, analog.hour, analog.minute, analog.second)

	analog.root = container.NewWithoutLayout(objects...)
	analog.root.Resize(fyne.NewSize(faceSize, faceSize))
	return analog
}

func hand(width float32, c color.Color) *canvas.Line {
	line := canvas.NewLine(c)
	line.StrokeWidth = width
	line.Position1 = fyne.NewPos(faceSize/2, faceSize/2)
	line.Position2 = line.Position1
	return line
}

func (analog *analogFace) set(hands worldclock.Hands) {
	analog.point(analog.hour, hands.Hour, faceSize*0.25)
	analog.point(analog.minute, hands.Minute, faceSize*0.36)
	analog.point(analog.second, hands.Second, faceSize*0.42)
}

func (analog *analogFace) point(line *canvas.Line, degrees float64, length float32) {
	line.Position1 = fyne.NewPos(faceSize/2, faceSize/2)
	line.Position2 = handPoint(degrees, length)
	line.Refresh()
}

// handPoint converts a clockwise angle from 12 o'clock to face coordinates.
func handPoint(degrees float64, length float32) fyne.Position {
	radians := degrees * math.Pi / 180
	return fyne.NewPos(
		faceSize/2+length*float32(math.Sin(radians)),
		faceSize/2-length*float32(math.Cos(radians)),
	)
}
