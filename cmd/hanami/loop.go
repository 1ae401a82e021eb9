package main

import (
	"fmt"
	"time"

	"hanami/anim"
	"hanami/audio"
	"hanami/core"
	"hanami/gesture"
	"hanami/io"
	"hanami/renderer"
	"hanami/scene"
	"hanami/textures"
	"hanami/tree"
)

// launch owns the window, the GL context and the frame loop. It returns
// once the window closes or Esc is pressed.
func launch(cfg io.Config, pal anim.Palette, startMuted bool) error {
	fmt.Printf("Config: depth=%d branch=%.1f photos=%d palette=%s seed=%d\n",
		cfg.Depth, cfg.BranchLength, cfg.PhotoCount, cfg.Palette, cfg.Seed)

	windowConfig := core.DefaultWindowConfig()
	windowConfig.Width = cfg.Width
	windowConfig.Height = cfg.Height
	windowConfig.Title = "hanami"

	window, err := core.NewWindow(windowConfig)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer window.Destroy()

	fbw, fbh := window.GetFramebufferSize()

	texman := textures.NewManager(cfg.Seed)
	inst, err := scene.NewInstallation(scene.Params{
		Tree: tree.Params{
			Depth:        cfg.Depth,
			BranchLength: cfg.BranchLength,
			Seed:         cfg.Seed,
		},
		PhotoCount: cfg.PhotoCount,
		PhotosDir:  cfg.PhotosDir,
		FramePath:  cfg.FrameModel,
		Aspect:     float32(fbw) / float32(fbh),
	})
	if err != nil {
		return fmt.Errorf("failed to build installation: %w", err)
	}
	fmt.Printf("Tree generated: %d wood + %d blossom particles\n",
		inst.Tree.Wood.Count(), inst.Tree.Blossom.Count())

	rend, err := renderer.New(window, inst, texman, renderer.Options{Bloom: cfg.Bloom})
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	defer rend.Destroy()

	bloomOn := cfg.Bloom
	bloomStrength := pal.Glow
	if bloomOn {
		rend.SetBloomStrength(bloomStrength)
		fmt.Printf("Bloom enabled (bright-pass + 4x Gaussian blur, strength %.2f)\n", bloomStrength)
	}

	// A dead speaker is not fatal: the installation runs silent forever
	// rather than refusing to start.
	amb := audio.NewAmbience()
	audioOn := false
	if cfg.Audio {
		if err := amb.Start(); err != nil {
			fmt.Printf("Audio init failed (continuing silent): %v\n", err)
		} else {
			audioOn = true
			amb.SetMuted(startMuted)
			defer amb.Close()
			fmt.Println("Ambience started (breeze + drone, 48 kHz)")
		}
	}

	var src gesture.Source = gesture.NewKeyboardSource(window)
	if !src.Available() {
		fmt.Println("Gesture source unavailable; scene idles until input recovers")
	}
	state := anim.NewState(pal)

	window.OnFramebufferResize(func(w, h int) {
		if w == 0 || h == 0 {
			return // minimized
		}
		rend.Resize(w, h)
		inst.Camera.UpdateAspectRatio(float32(w), float32(h))
	})

	printControls(src.Describe(), cfg.Palette)

	overlay := &DebugOverlay{}
	lastTime := time.Now()
	statTime := lastTime
	frameCount := 0
	wasRevealed := false
	bloomKeyWasDown := false
	muteKeyWasDown := false

	for !window.ShouldClose() {
		window.PollEvents()

		if window.IsKeyPressed(core.KeyEscape) {
			break
		}

		// Toggle bloom on B key press (debounced)
		bDown := window.IsKeyPressed(core.KeyB)
		if bDown && !bloomKeyWasDown && cfg.Bloom {
			bloomOn = !bloomOn
			if bloomOn {
				rend.SetBloomStrength(bloomStrength)
			} else {
				rend.SetBloomStrength(0)
			}
			fmt.Printf("[Bloom] %s\n", map[bool]string{true: "ON", false: "OFF"}[bloomOn])
		}
		bloomKeyWasDown = bDown

		// Toggle mute on M key press (debounced)
		mDown := window.IsKeyPressed(core.KeyM)
		if mDown && !muteKeyWasDown && audioOn {
			amb.SetMuted(!amb.Muted())
			fmt.Printf("[Audio] %s\n", map[bool]string{true: "muted", false: "live"}[amb.Muted()])
		}
		muteKeyWasDown = mDown

		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now
		if dt > 0.05 {
			dt = 0.05 // cap huge steps after hitches or the first frame
		}

		frame := src.Poll()
		state.Update(frame, dt)
		snap := state.Snapshot()

		inst.Update(snap, dt)

		if audioOn {
			amb.SetBlend(snap.Expansion)
			if snap.Reveal && !wasRevealed {
				amb.PlayReveal()
			}
		}
		wasRevealed = snap.Reveal

		rend.Frame(snap, inst)
		window.SwapBuffers()

		frameCount++
		if elapsed := now.Sub(statTime); elapsed.Seconds() >= 1.0 {
			fps := int(float64(frameCount)/elapsed.Seconds() + 0.5)
			mode := map[bool]string{true: "galaxy", false: "tree"}[snap.Dispersed()]
			window.SetTitle(fmt.Sprintf("hanami | FPS: %d | %s", fps, mode))

			overlay.AddLine("FPS: %d | expansion %.2f (%s) | hue %.2f rad | orbit %.0f",
				fps, snap.Expansion, mode, snap.HueOffset, inst.Camera.Distance())
			overlay.AddLine("gesture %s | tracking %v | az %.2f pol %.2f",
				frame.Gesture, frame.Tracking, snap.Azimuth, snap.Polar)
			overlay.Flush()

			frameCount = 0
			statTime = now
		}
	}

	fmt.Println("Exiting...")
	return nil
}

func printControls(source, palette string) {
	fmt.Println("===========================================")
	fmt.Println("  hanami - cherry blossom installation")
	fmt.Println("===========================================")
	fmt.Println("")
	fmt.Printf("Input: %s | Palette: %s\n", source, palette)
	fmt.Println("")
	fmt.Println("GESTURES:")
	fmt.Println("  Hold F         - fist: gather the tree")
	fmt.Println("  Hold O         - open hand: disperse into the galaxy")
	fmt.Println("  Hold 1         - one finger: reveal the photos")
	fmt.Println("  Hold 2         - two fingers: cycle the blossom colors")
	fmt.Println("  Move cursor    - steer the orbit camera (edges = faster)")
	fmt.Println("  T              - toggle tracking (camera holds its pose)")
	fmt.Println("")
	fmt.Println("TOGGLES:")
	fmt.Println("  B              - bloom on/off")
	fmt.Println("  M              - mute / unmute ambience")
	fmt.Println("")
	fmt.Println("EXIT: ESC")
	fmt.Println("===========================================")
	fmt.Println("")
}
