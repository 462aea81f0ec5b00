// Command simulate runs a level without a window and prints the hero's
// trace, one line per frame.
//
//	simulate -level Level1 -frames 120 -input "0-59:right;60:right,jump"
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

// printSink reports sounds instead of playing them.
type printSink struct {
	out   io.Writer
	frame *int
}

func (s printSink) PlayOnce(id string) error {
	fmt.Fprintf(s.out, "# %d sound %s\n", *s.frame, id)
	return nil
}

func (s printSink) PlayLooping(id string) error {
	fmt.Fprintf(s.out, "# %d loop %s\n", *s.frame, id)
	return nil
}

func main() {
	levelID := flag.String("level", "Level1", "level id")
	room := flag.String("room", levels.DefaultRoom, "room of the level")
	frames := flag.Int("frames", 120, "number of frames to run")
	dt := flag.Float64("dt", 0.016, "seconds per frame")
	every := flag.Int("every", 1, "print every n-th frame")
	input := flag.String("input", "", `held keys per frame range, e.g. "0-29:right;30:jump"`)
	levelsDir := flag.String("levels-dir", "", "read levels from this directory instead of the embedded ones")
	flag.Parse()

	schedule, err := parseSchedule(*input)
	if err != nil {
		log.Fatal(err)
	}

	var provider levels.Provider = levels.EmbeddedProvider()
	if *levelsDir != "" {
		provider = levels.DirProvider(*levelsDir)
	}
	if err := run(os.Stdout, provider, *levelID, *room, *frames, *dt, *every, schedule); err != nil {
		log.Fatal(err)
	}
}

func run(out io.Writer, provider levels.Provider, levelID, room string, frames int, dt float64, every int, schedule schedule) error {
	lvl, err := provider.Level(levelID)
	if err != nil {
		return err
	}
	data, err := provider.Room(lvl, room)
	if err != nil {
		return err
	}
	hero, err := prefabs.LoadHeroSpec()
	if err != nil {
		return err
	}
	sess := &component.Session{}
	scene, err := entity.BuildScene(data, hero, sess, nil)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 1, ' ', 0)
	defer tw.Flush()

	frame := 0
	in := system.NewInputSystemFrom(func() component.Input { return schedule.at(frame) })
	pipeline := system.NewPipeline(in, printSink{out: tw, frame: &frame}, nil)
	w := scene.World

	fmt.Fprintln(tw, "frame\tx\ty\tvx\tvy\tstate\ttouched\tattitude\tscore\tdeaths")
	for ; frame < frames; frame++ {
		pipeline.Update(w, dt)

		for _, ev := range w.Events().Drain() {
			fmt.Fprintf(tw, "# %d event %s\n", frame, ev.Type)
		}
		if every <= 1 || frame%every == 0 {
			printFrame(tw, w, scene.Hero, frame, sess)
		}
		if req, ok := firstLevelChange(w); ok {
			fmt.Fprintf(tw, "# %d level change %q/%q\n", frame, req.Level, req.Room)
			return nil
		}
	}
	return nil
}

func printFrame(out io.Writer, w *ecs.World, hero ecs.Entity, frame int, sess *component.Session) {
	t, _ := ecs.Get(w, hero, component.TransformComponent.Kind())
	body, _ := ecs.Get(w, hero, component.BodyComponent.Kind())
	contacts, _ := ecs.Get(w, hero, component.ContactsComponent.Kind())
	anim, _ := ecs.Get(w, hero, component.AnimationComponent.Kind())
	if t == nil || body == nil || contacts == nil || anim == nil {
		return
	}
	fmt.Fprintf(out, "%d\t%.2f\t%.2f\t%.2f\t%.2f\t%s\t%s\t%s\t%d\t%d\n",
		frame, t.X, t.Y, body.VX, body.VY, contacts.State, contacts.Touched, anim.Attitude, sess.Score, sess.Deaths)
}

func firstLevelChange(w *ecs.World) (component.LevelChangeRequest, bool) {
	e, ok := ecs.First(w, component.LevelChangeRequestComponent.Kind())
	if !ok {
		return component.LevelChangeRequest{}, false
	}
	req, ok := ecs.Get(w, e, component.LevelChangeRequestComponent.Kind())
	if !ok {
		return component.LevelChangeRequest{}, false
	}
	return *req, true
}
