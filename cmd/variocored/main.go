// Command variocored runs the flight computer core standalone: it opens the
// CAN bridge and NMEA output serial ports, restores persisted settings,
// and drives the controller's 1ms/1s tick pipeline against real wall-clock
// time.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/skyvario/varioc/canbus"
	"github.com/skyvario/varioc/config"
	"github.com/skyvario/varioc/controller"
	"github.com/skyvario/varioc/events"
	"github.com/skyvario/varioc/idle"
	"github.com/skyvario/varioc/model"
	"github.com/skyvario/varioc/nmea"
	"github.com/skyvario/varioc/persistence"
	"github.com/skyvario/varioc/persistence/filestore"
	"github.com/skyvario/varioc/transport/serialport"
)

func main() {
	configPath := flag.String("config", "varioc.yaml", "path to the startup configuration file")
	storePath := flag.String("store", "varioc-settings.yaml", "path to the persisted-settings file")
	canPort := flag.String("can-port", "", "overrides the configured CAN bridge serial port")
	nmeaPort := flag.String("nmea-port", "", "overrides the configured NMEA output serial port")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("# failed to load config: %v\n", err)
	}
	if *canPort != "" {
		cfg.CanPort = *canPort
	}
	if *nmeaPort != "" {
		cfg.NmeaPort = *nmeaPort
	}

	store, err := filestore.Open(*storePath)
	if err != nil {
		log.Fatalf("# failed to open settings store: %v\n", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	dispatcher := canbus.NewDispatcher(cfg.PreferredVDA, cfg.DispatcherRanges(), cfg.ObjectIDFilter, rand.New(rand.NewSource(time.Now().UnixNano())))
	c := controller.New(dispatcher, cfg.TcClimbRate, cfg.TcSpeedToFly, cfg.TcSupplyVoltage)

	m := &model.Model{}
	for _, it := range store.All() {
		c.RestoreItem(m, it)
	}
	if m.Config.GliderIdx == 0 && cfg.GliderIndex != 0 {
		c.PersistSetGlider(m, cfg.GliderIndex, persistence.EchoNone)
	}
	if m.Config.CenterFreqHz == 0 {
		m.Config.CenterFreqHz = c.Sound.CenterFreqHz
	}
	c.BuildMenu(m)

	var canWriter *bufio.Writer
	if cfg.CanPort != "" {
		port, err := serialport.Open(serialport.Config{Name: cfg.CanPort, Baud: cfg.CanBaud})
		if err != nil {
			log.Fatalf("# failed to open CAN port: %v\n", err)
		}
		defer port.Close()
		canWriter = bufio.NewWriter(port)
		go readCanPort(ctx, port, dispatcher, c, m)
	}

	var nmeaWriter *bufio.Writer
	if cfg.NmeaPort != "" {
		port, err := serialport.Open(serialport.Config{Name: cfg.NmeaPort, Baud: cfg.NmeaBaud})
		if err != nil {
			log.Fatalf("# failed to open NMEA port: %v\n", err)
		}
		defer port.Close()
		nmeaWriter = bufio.NewWriter(port)
		go readNmeaPort(ctx, port, c, m)
	}

	fmt.Printf("# variocored starting, can=%q nmea=%q\n", cfg.CanPort, cfg.NmeaPort)
	runTickLoop(ctx, c, m, store, canWriter, nmeaWriter)
	fmt.Println("# variocored stopped")
}

// runTickLoop drives the 1ms controller tick against wall-clock time. It
// drains outbound CAN frames after each 100ms recalculation and each 1s
// tick, drains idle events every millisecond, and writes one NMEA sentence
// every 200ms.
func runTickLoop(ctx context.Context, c *controller.Controller, m *model.Model, store *filestore.Store, canOut, nmeaOut *bufio.Writer) {
	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()

	var ms uint32
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			ms++
			ran100ms := c.Tick1ms(m)
			if ran100ms {
				drainCan(c, canOut)
			}
			if ms%1000 == 0 {
				c.Tick1s(m)
				drainCan(c, canOut)
			}
			drainIdleEvents(c, store)
			maybeWriteNmeaSentence(c, m, nmeaOut, ms)
		}
	}
}

func drainCan(c *controller.Controller, out *bufio.Writer) {
	if out == nil {
		for {
			if _, ok := c.Dispatcher.DrainTx(); !ok {
				break
			}
		}
		return
	}
	for {
		f, ok := c.Dispatcher.DrainTx()
		if !ok {
			break
		}
		out.Write(canbus.EncodeLine(f, true))
	}
	out.Flush()
}

func drainIdleEvents(c *controller.Controller, store *filestore.Store) {
	if len(c.IdleEvents) == 0 {
		return
	}
	for _, ev := range c.IdleEvents {
		switch ev.Kind {
		case idle.KindSetEepromItem:
			store.Put(ev.Item)
			store.Flush()
		case idle.KindClearEepromItems:
			for _, id := range ev.ClearIDs {
				store.Put(persistence.Item{ID: id, DatBit: false})
			}
			store.Flush()
		}
	}
	c.IdleEvents = c.IdleEvents[:0]
}

// maybeWriteNmeaSentence emits one sentence every 200ms, matching the
// fast cyclic cadence; the slow cadence is a subset of the same readout
// sequence and is paced by the same call.
func maybeWriteNmeaSentence(c *controller.Controller, m *model.Model, out *bufio.Writer, ms uint32) {
	if out == nil || ms%200 != 0 {
		return
	}
	kind, id := c.NmeaCycle.Next()
	sentence, ok := nmea.Render(m, kind, id)
	if !ok {
		return
	}
	out.WriteString(sentence)
	out.Flush()
}

func readCanPort(ctx context.Context, r io.Reader, dispatcher *canbus.Dispatcher, c *controller.Controller, m *model.Model) {
	lr := canbus.NewLineReader(r)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		f, isSend, err := lr.Next()
		if err != nil {
			return
		}
		if isSend {
			continue
		}
		classified, ok := dispatcher.RxData(f)
		if !ok {
			continue
		}
		c.ReadCanFrame(m, classified)
	}
}

func readNmeaPort(ctx context.Context, r io.Reader, c *controller.Controller, m *model.Model) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		default:
		}
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		body, err := nmea.ParseSentence(line)
		if err != nil {
			continue
		}
		if strings.HasPrefix(body, "g") {
			if gcmd, err := nmea.ParseG(body); err == nil {
				applyGCommand(c, m, gcmd)
			}
			continue
		}
		cmd, err := nmea.ParsePLARSSet(body)
		if err != nil {
			continue
		}
		applySetCommand(c, m, cmd)
	}
}

func applySetCommand(c *controller.Controller, m *model.Model, cmd nmea.SetCommand) {
	switch cmd.Key {
	case nmea.KeyMC:
		c.PersistSetF32(m, persistence.McCready, cmd.Value, persistence.EchoCan)
	case nmea.KeyBal:
		kg := cmd.Value * m.Config.GliderData.Basic.MaxBallast
		c.PersistSetF32(m, persistence.WaterBallast, kg, persistence.EchoCan)
	case nmea.KeyBugs:
		c.PersistSetF32(m, persistence.Bugs, 1.0+cmd.Value/100.0, persistence.EchoCan)
	case nmea.KeyQnh:
		c.PersistSetF32(m, persistence.Qnh, cmd.Value, persistence.EchoCan)
	case nmea.KeyCir:
		// Wire encoding is 0=SpeedToFly,1=Vario, the inverse of the
		// internal VarioMode ordinal.
		mode := model.SpeedToFly
		if cmd.Value != 0 {
			mode = model.Vario
		}
		c.PersistSetVarioModeControl(m, mode, model.SourceNmea, persistence.EchoCan)
	}
}

// applyGCommand dispatches a "$g<code>" remote key-emulation command: s0/s1
// select the vario mode directly (as an NMEA-sourced override, same as a
// CIR set command), and rp/rl/ru/rd emulate the four front-panel buttons
// reachable without a second rotary encoder of their own (commit, back,
// and the two directions of the secondary rotary).
func applyGCommand(c *controller.Controller, m *model.Model, cmd nmea.GCommand) {
	switch cmd.Code {
	case "s0":
		c.PersistSetVarioModeControl(m, model.Vario, model.SourceNmea, persistence.EchoCan)
	case "s1":
		c.PersistSetVarioModeControl(m, model.SpeedToFly, model.SourceNmea, persistence.EchoCan)
	case "rp":
		c.EventHandler(m, events.Event{Key: &events.KeyEvent{Key: events.KeyEnter, Action: events.KeyPressed}})
	case "rl":
		c.EventHandler(m, events.Event{Key: &events.KeyEvent{Key: events.KeyEsc, Action: events.KeyPressed}})
	case "ru":
		c.EventHandler(m, events.Event{Key: &events.KeyEvent{Key: events.KeyLeft, Action: events.KeyPressed}})
	case "rd":
		c.EventHandler(m, events.Event{Key: &events.KeyEvent{Key: events.KeyRight, Action: events.KeyPressed}})
	}
}
