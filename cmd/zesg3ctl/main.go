// cmd/zesg3ctl/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/weighworks/zesg3/internal/config"
	"github.com/weighworks/zesg3/internal/device"
	devmodbus "github.com/weighworks/zesg3/internal/device/modbus"
	"github.com/weighworks/zesg3/internal/regmap"
)

func usage() {
	log.Fatal(`usage: zesg3ctl <config.yaml> <command> [args]

commands:
  list                       print every register with address and encoding
  get <register>             read one register
  set <register> <value>     write one register (bitfields: field=value ...)
  status                     read and decode the status register
  command <name|code>        write the command register (e.g. reboot)`)
}

// Command names accepted on the CLI, mapped to device command codes.
var commandNames = map[string]regmap.CommandCode{
	"reboot":               regmap.CmdReboot,
	"tare-ram":             regmap.CmdTareToRAM,
	"tare-flash":           regmap.CmdTareToFlash,
	"sample-weight-flash":  regmap.CmdSampleWeightToFlash,
	"tare-from-register":   regmap.CmdTareFromRegister,
	"reset-max-net-weight": regmap.CmdResetMaxNetWeight,
	"reset-min-net-weight": regmap.CmdResetMinNetWeight,
}

func main() {
	if len(os.Args) < 3 {
		usage()
	}

	cfgPath := os.Args[1]
	cmd := os.Args[2]
	args := os.Args[3:]

	// "list" needs no connection.
	if cmd == "list" {
		listRegisters()
		return
	}

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	// --------------------
	// Dial the transmitter
	// --------------------

	client, err := devmodbus.New(devmodbus.Config{
		Mode:     cfg.Device.Mode,
		Endpoint: cfg.Device.Endpoint,
		UnitID:   cfg.Device.UnitID,
		Timeout:  time.Duration(cfg.Device.TimeoutMs) * time.Millisecond,
		BaudRate: cfg.Device.Serial.BaudRate,
		DataBits: cfg.Device.Serial.DataBits,
		Parity:   cfg.Device.Serial.Parity,
		StopBits: cfg.Device.Serial.StopBits,
	})
	if err != nil {
		log.Fatalf("connect failed (%s): %v", cfg.Device.Endpoint, err)
	}
	defer client.Close()

	dev := device.New(client)

	switch cmd {
	case "get":
		if len(args) != 1 {
			usage()
		}
		if err := get(dev, args[0]); err != nil {
			log.Fatalf("get %s failed: %v", args[0], err)
		}

	case "set":
		if len(args) < 2 {
			usage()
		}
		if err := set(dev, args[0], args[1:]); err != nil {
			log.Fatalf("set %s failed: %v", args[0], err)
		}

	case "status":
		if err := printStatus(dev); err != nil {
			log.Fatalf("status failed: %v", err)
		}

	case "command":
		if len(args) != 1 {
			usage()
		}
		if err := runCommand(dev, args[0]); err != nil {
			log.Fatalf("command %s failed: %v", args[0], err)
		}

	default:
		usage()
	}
}

func listRegisters() {
	for _, name := range regmap.Names() {
		d, _ := regmap.Lookup(name)

		access := "rw"
		if d.ReadOnly {
			access = "ro"
		}
		fmt.Printf("%-28s addr=%-3d words=%d %-8s %s\n",
			name, d.Address, d.Words(), d.Encoding, access)
	}
}

func get(dev *device.Device, name string) error {
	desc, err := regmap.Lookup(name)
	if err != nil {
		return err
	}

	switch desc.Encoding {
	case regmap.UInt16, regmap.Enum, regmap.Command:
		v, err := dev.ReadWord(name)
		if err != nil {
			return err
		}
		fmt.Println(v)

	case regmap.Float32:
		v, err := dev.ReadFloat(name)
		if err != nil {
			return err
		}
		fmt.Println(v)

	case regmap.Signed32:
		v, err := dev.ReadInt(name)
		if err != nil {
			return err
		}
		fmt.Println(v)

	case regmap.UInt32:
		v, err := dev.ReadUint(name)
		if err != nil {
			return err
		}
		fmt.Println(v)

	case regmap.BitField:
		fields, err := dev.ReadFields(name)
		if err != nil {
			return err
		}
		for _, field := range desc.Fields.Fields() {
			fmt.Printf("%s=%d\n", field, fields[field])
		}
	}

	return nil
}

func set(dev *device.Device, name string, args []string) error {
	desc, err := regmap.Lookup(name)
	if err != nil {
		return err
	}

	switch desc.Encoding {
	case regmap.UInt16, regmap.Enum, regmap.Command:
		v, err := strconv.ParseUint(args[0], 0, 16)
		if err != nil {
			return fmt.Errorf("parse %q: %w", args[0], err)
		}
		return dev.WriteWord(name, uint16(v))

	case regmap.Float32:
		v, err := strconv.ParseFloat(args[0], 32)
		if err != nil {
			return fmt.Errorf("parse %q: %w", args[0], err)
		}
		return dev.WriteFloat(name, float32(v))

	case regmap.Signed32:
		v, err := strconv.ParseInt(args[0], 0, 32)
		if err != nil {
			return fmt.Errorf("parse %q: %w", args[0], err)
		}
		return dev.WriteInt(name, int32(v))

	case regmap.UInt32:
		v, err := strconv.ParseUint(args[0], 0, 32)
		if err != nil {
			return fmt.Errorf("parse %q: %w", args[0], err)
		}
		return dev.WriteUint(name, uint32(v))

	case regmap.BitField:
		values := make(map[string]uint16, len(args))
		for _, arg := range args {
			field, raw, ok := strings.Cut(arg, "=")
			if !ok {
				return fmt.Errorf("bitfield values must be field=value, got %q", arg)
			}
			v, err := strconv.ParseUint(raw, 0, 16)
			if err != nil {
				return fmt.Errorf("parse %q: %w", arg, err)
			}
			values[field] = uint16(v)
		}
		return dev.WriteFields(name, values)
	}

	return fmt.Errorf("unsupported encoding %s", desc.Encoding)
}

func printStatus(dev *device.Device) error {
	flags, err := dev.Status()
	if err != nil {
		return err
	}

	for _, name := range regmap.StatusFlags {
		fmt.Printf("%-40s %v\n", name, flags.On(name))
	}
	return nil
}

func runCommand(dev *device.Device, arg string) error {
	code, ok := commandNames[arg]
	if !ok {
		// Raw numeric codes are accepted too; the facade still validates
		// them against the command set.
		v, err := strconv.ParseUint(arg, 0, 16)
		if err != nil {
			return fmt.Errorf("unknown command %q", arg)
		}
		code = regmap.CommandCode(v)
	}
	return dev.Command(code)
}
