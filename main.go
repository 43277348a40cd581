package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/bezier-blob/internal/config"
	"github.com/iburimskiy/bezier-blob/internal/game"
)

func main() {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Bezier Blob - drag the blue points; Space: guides, A: animate, F: fill, R: rotate, Esc/Q: quit")

	g, err := game.New()
	if err != nil {
		_ = zenity.Error(err.Error(), zenity.Title("Bezier Blob"))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		panic(err)
	}
}
