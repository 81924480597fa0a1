// Command posedump prints every joint's world position for a given time,
// as text or JSON. Useful for checking poses without a window.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"skelwalk/internal/rig"
	"skelwalk/internal/walk"
)

type jointDump struct {
	Name     string     `json:"name"`
	Joint    [3]float32 `json:"joint"`
	Endpoint [3]float32 `json:"endpoint"`
}

func main() {
	t := flag.Float64("t", 0, "Elapsed time in seconds")
	asJSON := flag.Bool("json", false, "Emit JSON instead of text")
	flag.Parse()

	h := rig.NewHuman()
	walk.Animate(h, *t)

	j := h.Joints
	named := []struct {
		name string
		idx  int
	}{
		{"root", j.Root}, {"spine", j.Spine}, {"neck", j.Neck}, {"head", j.Head},
		{"hipL", j.HipL}, {"kneeL", j.KneeL}, {"ankleL", j.AnkleL},
		{"hipR", j.HipR}, {"kneeR", j.KneeR}, {"ankleR", j.AnkleR},
		{"shoulderL", j.ShoulderL}, {"elbowL", j.ElbowL}, {"wristL", j.WristL},
		{"shoulderR", j.ShoulderR}, {"elbowR", j.ElbowR}, {"wristR", j.WristR},
	}

	dump := make([]jointDump, 0, len(named))
	for _, n := range named {
		b := &h.Skel.Bones[n.idx]
		p := b.JointPos()
		e := b.EndpointPos()
		dump = append(dump, jointDump{
			Name:     n.name,
			Joint:    [3]float32{p.X(), p.Y(), p.Z()},
			Endpoint: [3]float32{e.X(), e.Y(), e.Z()},
		})
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(dump); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("t=%.3fs (%.2f steps/sec)\n", *t, walk.StepsPerSecond)
	for _, d := range dump {
		fmt.Printf("  %-10s joint (%+.3f %+.3f %+.3f)  end (%+.3f %+.3f %+.3f)\n",
			d.Name, d.Joint[0], d.Joint[1], d.Joint[2], d.Endpoint[0], d.Endpoint[1], d.Endpoint[2])
	}
}
