package texture

import "image/color"

func rgba(r, g, b, a uint8) color.NRGBA { return color.NRGBA{R: r, G: g, B: b, A: a} }

// hidden covers the zero samples a layer holds for cells owned by the other
// layer, so they never paint.
var hidden = Band{-1.0, 0.0, Transparent}

// themes is the fixed registry. Land maps run from shoreline (low) to peaks (high).
var themes = []Theme{
	{
		Name: "Frozen",
		Water: ColorMap{hidden,
			{0.0, 0.6, rgba(0, 0, 100, 255)},
			{0.6, 0.8, rgba(0, 0, 150, 255)},
			{0.8, 0.97, rgba(0, 0, 200, 255)},
			{0.97, 1.0, rgba(0, 0, 250, 255)},
		},
		Land: ColorMap{hidden,
			{0.0, 0.16, rgba(220, 220, 220, 255)},
			{0.16, 0.2, rgba(210, 210, 210, 255)},
			{0.2, 0.24, rgba(200, 200, 200, 255)},
			{0.24, 0.32, rgba(190, 190, 190, 255)},
			{0.32, 0.4, rgba(180, 180, 180, 255)},
			{0.4, 0.48, rgba(170, 170, 170, 255)},
			{0.48, 0.64, rgba(160, 160, 160, 255)},
			{0.64, 0.8, rgba(150, 150, 150, 255)},
			{0.8, 0.86, rgba(140, 140, 140, 255)},
			{0.86, 0.92, rgba(130, 130, 130, 255)},
			{0.92, 1.0, rgba(120, 120, 120, 255)},
		},
		Cloud: ColorMap{hidden,
			{0.6, 0.8, rgba(255, 255, 255, 180)},
			{0.8, 0.85, rgba(240, 240, 240, 200)},
		},
	},
	{
		Name: "Tropical",
		Water: ColorMap{hidden,
			{0.0, 0.5, rgba(0, 60, 130, 255)},
			{0.5, 0.8, rgba(0, 110, 170, 255)},
			{0.8, 0.95, rgba(0, 170, 200, 255)},
			{0.95, 1.0, rgba(80, 220, 220, 255)},
		},
		Land: ColorMap{hidden,
			{0.0, 0.08, rgba(238, 214, 150, 255)},
			{0.08, 0.35, rgba(34, 160, 60, 255)},
			{0.35, 0.6, rgba(20, 120, 40, 255)},
			{0.6, 0.8, rgba(60, 100, 40, 255)},
			{0.8, 0.92, rgba(110, 90, 60, 255)},
			{0.92, 1.0, rgba(240, 240, 240, 255)},
		},
		Cloud: ColorMap{hidden,
			{0.55, 0.75, rgba(255, 255, 255, 150)},
			{0.75, 0.9, rgba(250, 250, 250, 210)},
		},
	},
	{
		Name: "Desert",
		Water: ColorMap{hidden,
			{0.0, 0.7, rgba(30, 70, 110, 255)},
			{0.7, 1.0, rgba(60, 110, 140, 255)},
		},
		Land: ColorMap{hidden,
			{0.0, 0.2, rgba(237, 201, 175, 255)},
			{0.2, 0.45, rgba(222, 184, 135, 255)},
			{0.45, 0.7, rgba(205, 133, 63, 255)},
			{0.7, 0.9, rgba(160, 82, 45, 255)},
			{0.9, 1.0, rgba(120, 60, 30, 255)},
		},
		Cloud: ColorMap{hidden,
			{0.75, 0.9, rgba(250, 235, 215, 120)},
		},
	},
	{
		Name: "Standard",
		Water: ColorMap{hidden,
			{0.0, 0.4, rgba(0, 30, 100, 255)},
			{0.4, 0.75, rgba(0, 60, 160, 255)},
			{0.75, 0.95, rgba(20, 100, 200, 255)},
			{0.95, 1.0, rgba(60, 140, 220, 255)},
		},
		Land: ColorMap{hidden,
			{0.0, 0.1, rgba(210, 190, 130, 255)},
			{0.1, 0.4, rgba(60, 150, 60, 255)},
			{0.4, 0.65, rgba(40, 110, 40, 255)},
			{0.65, 0.85, rgba(120, 110, 100, 255)},
			{0.85, 1.0, rgba(245, 245, 245, 255)},
		},
		Cloud: ColorMap{hidden,
			{0.6, 0.8, rgba(255, 255, 255, 170)},
			{0.8, 1.0, rgba(255, 255, 255, 220)},
		},
	},
	{
		Name: "Alien",
		Water: ColorMap{hidden,
			{0.0, 0.5, rgba(70, 0, 90, 255)},
			{0.5, 0.85, rgba(120, 0, 140, 255)},
			{0.85, 1.0, rgba(200, 40, 200, 255)},
		},
		Land: ColorMap{hidden,
			{0.0, 0.25, rgba(0, 220, 160, 255)},
			{0.25, 0.5, rgba(0, 180, 120, 255)},
			{0.5, 0.75, rgba(180, 255, 0, 255)},
			{0.75, 1.0, rgba(255, 120, 0, 255)},
		},
		Cloud: ColorMap{hidden,
			{0.65, 0.85, rgba(200, 255, 200, 140)},
		},
	},
	{
		Name: "Volcanic",
		Water: ColorMap{hidden,
			{0.0, 0.5, rgba(120, 20, 0, 255)},
			{0.5, 0.85, rgba(200, 60, 0, 255)},
			{0.85, 1.0, rgba(255, 160, 0, 255)},
		},
		Land: ColorMap{hidden,
			{0.0, 0.3, rgba(40, 30, 30, 255)},
			{0.3, 0.6, rgba(60, 45, 40, 255)},
			{0.6, 0.85, rgba(85, 65, 55, 255)},
			{0.85, 1.0, rgba(110, 90, 80, 255)},
		},
		Cloud: ColorMap{hidden,
			{0.6, 0.8, rgba(90, 90, 90, 160)},
			{0.8, 1.0, rgba(60, 60, 60, 200)},
		},
	},
	{
		Name: "Oceanic",
		Water: ColorMap{hidden,
			{0.0, 0.3, rgba(0, 20, 80, 255)},
			{0.3, 0.6, rgba(0, 40, 120, 255)},
			{0.6, 0.85, rgba(0, 80, 170, 255)},
			{0.85, 1.0, rgba(0, 130, 210, 255)},
		},
		Land: ColorMap{hidden,
			{0.0, 0.5, rgba(220, 200, 150, 255)},
			{0.5, 1.0, rgba(70, 140, 70, 255)},
		},
		Cloud: ColorMap{hidden,
			{0.5, 0.75, rgba(255, 255, 255, 160)},
			{0.75, 1.0, rgba(255, 255, 255, 230)},
		},
	},
	{
		Name: "Toxic",
		Water: ColorMap{hidden,
			{0.0, 0.6, rgba(60, 90, 0, 255)},
			{0.6, 1.0, rgba(120, 160, 0, 255)},
		},
		Land: ColorMap{hidden,
			{0.0, 0.3, rgba(90, 80, 20, 255)},
			{0.3, 0.7, rgba(130, 120, 30, 255)},
			{0.7, 1.0, rgba(170, 170, 60, 255)},
		},
		Cloud: ColorMap{hidden,
			{0.55, 0.8, rgba(200, 230, 60, 150)},
			{0.8, 1.0, rgba(220, 250, 80, 200)},
		},
	},
	{
		Name: "Barren",
		Water: ColorMap{hidden,
			{0.0, 1.0, rgba(70, 70, 75, 255)},
		},
		Land: ColorMap{hidden,
			{0.0, 0.25, rgba(110, 105, 100, 255)},
			{0.25, 0.5, rgba(130, 125, 120, 255)},
			{0.5, 0.75, rgba(150, 145, 140, 255)},
			{0.75, 1.0, rgba(175, 170, 165, 255)},
		},
		Cloud: ColorMap{},
	},
	{
		Name: "Crimson",
		Water: ColorMap{hidden,
			{0.0, 0.5, rgba(80, 0, 20, 255)},
			{0.5, 1.0, rgba(140, 10, 40, 255)},
		},
		Land: ColorMap{hidden,
			{0.0, 0.3, rgba(180, 60, 50, 255)},
			{0.3, 0.6, rgba(150, 40, 40, 255)},
			{0.6, 0.85, rgba(110, 30, 30, 255)},
			{0.85, 1.0, rgba(230, 200, 190, 255)},
		},
		Cloud: ColorMap{hidden,
			{0.7, 0.9, rgba(255, 200, 200, 130)},
		},
	},
	{
		Name: "Verdant",
		Water: ColorMap{hidden,
			{0.0, 0.6, rgba(0, 70, 90, 255)},
			{0.6, 1.0, rgba(0, 120, 130, 255)},
		},
		Land: ColorMap{hidden,
			{0.0, 0.2, rgba(100, 200, 80, 255)},
			{0.2, 0.5, rgba(50, 170, 50, 255)},
			{0.5, 0.8, rgba(20, 130, 30, 255)},
			{0.8, 1.0, rgba(10, 90, 20, 255)},
		},
		Cloud: ColorMap{hidden,
			{0.5, 0.7, rgba(255, 255, 255, 140)},
			{0.7, 0.9, rgba(255, 255, 255, 200)},
		},
	},
	{
		Name: "Arctic",
		Water: ColorMap{hidden,
			{0.0, 0.7, rgba(180, 220, 240, 255)},
			{0.7, 1.0, rgba(140, 190, 230, 255)},
		},
		Land: ColorMap{hidden,
			{0.0, 0.5, rgba(245, 250, 255, 255)},
			{0.5, 0.8, rgba(225, 235, 245, 255)},
			{0.8, 1.0, rgba(200, 215, 230, 255)},
		},
		Cloud: ColorMap{hidden,
			{0.6, 0.85, rgba(255, 255, 255, 190)},
		},
	},
}
