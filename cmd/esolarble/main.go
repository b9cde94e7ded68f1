// cmd/esolarble/main.go
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/tamzrod/esolar-ble/internal/ble"
	"github.com/tamzrod/esolar-ble/internal/config"
	"github.com/tamzrod/esolar-ble/internal/dtu"
	"github.com/tamzrod/esolar-ble/internal/poller"
	"github.com/tamzrod/esolar-ble/internal/status"
	"github.com/tamzrod/esolar-ble/internal/writer"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: esolarble <config.yaml>")
	}

	cfgPath := os.Args[1]

	// Optional .env alongside the process; secrets stay out of the YAML.
	_ = godotenv.Load()

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	applyEnvOverrides(cfg)

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	config.Normalize(cfg)

	ctx := context.Background()

	// --------------------
	// Build the pipeline
	// --------------------

	// ---- poller ----
	p, err := poller.Build(cfg, ble.NewBackend())
	if err != nil {
		log.Fatalf("poller build failed (device=%s): %v", cfg.Device.Address, err)
	}

	// ---- writer (MQTT sink) ----
	w, closeWriter, err := writer.Build(cfg)
	if err != nil {
		log.Fatalf("writer build failed (device=%s): %v", cfg.Device.Address, err)
	}
	defer closeWriter()

	// ---- channel between poller and writer ----
	out := make(chan poller.PollResult)

	// Orchestrator (runner-owned state + 1Hz seconds ticker)
	go func(deviceID string) {
		var snap status.Snapshot

		// Default snapshot state on start.
		snap.Health = status.HealthUnknown
		snap.LastErrorCode = status.CodeNone
		snap.SecondsInError = 0

		secTicker := time.NewTicker(time.Second)
		defer secTicker.Stop()

		// Full status write on start (identity re-assert).
		if err := w.WriteStatus(snap); err != nil {
			log.Printf("status write failed on start (device=%s): %v", deviceID, err)
		}

		for {
			select {
			case <-ctx.Done():
				return

			case res := <-out:
				// --- data delivery ---
				if err := w.Write(res); err != nil {
					log.Printf("writer error (device=%s): %v", deviceID, err)
				}

				// --- status update (device-level truth) ---
				if res.Err == nil {
					// Recovery / OK
					changed := false

					if snap.Health != status.HealthOK {
						snap.Health = status.HealthOK
						changed = true
					}
					// Reset last error code when healthy.
					if snap.LastErrorCode != status.CodeNone {
						snap.LastErrorCode = status.CodeNone
						changed = true
					}
					// Reset seconds-in-error on recovery.
					if snap.SecondsInError != 0 {
						snap.SecondsInError = 0
						changed = true
					}

					if changed {
						if err := w.WriteStatus(snap); err != nil {
							log.Printf("status write failed (device=%s): %v", deviceID, err)
						}
					}
				} else {
					// Error
					log.Printf("poll failed (device=%s): %v", deviceID, res.Err)

					changed := false

					if snap.Health != status.HealthError {
						snap.Health = status.HealthError
						changed = true
					}

					code := errorCode(res.Err)
					if snap.LastErrorCode != code {
						snap.LastErrorCode = code
						changed = true
					}

					// NOTE: seconds_in_error increments on the 1Hz ticker only.
					// No increment here.

					if changed {
						if err := w.WriteStatus(snap); err != nil {
							log.Printf("status write failed (device=%s): %v", deviceID, err)
						}
					}
				}

			case <-secTicker.C:
				// Tick 1 Hz while not OK.
				if snap.Health != status.HealthOK {
					if snap.SecondsInError < 65535 {
						snap.SecondsInError++
						if err := w.WriteStatus(snap); err != nil {
							log.Printf("status seconds tick write failed (device=%s): %v", deviceID, err)
						}
					}
				}
			}
		}
	}(cfg.Device.Address)

	// poller producer
	go p.Run(ctx, out)

	// --------------------
	// Block forever (daemon-safe, no deadlock)
	// --------------------
	for {
		time.Sleep(time.Hour)
	}
}

// applyEnvOverrides lets secrets come from the environment (or a .env
// file) instead of the config file. Empty variables are ignored.
func applyEnvOverrides(cfg *config.Config) {
	if v := os.Getenv("ESOLAR_DEVICE_PASSWORD"); v != "" {
		cfg.Device.Password = v
	}
	if v := os.Getenv("ESOLAR_MQTT_USERNAME"); v != "" {
		cfg.MQTT.Username = v
	}
	if v := os.Getenv("ESOLAR_MQTT_PASSWORD"); v != "" {
		cfg.MQTT.Password = v
	}
	if v := os.Getenv("ESOLAR_MQTT_BROKER_URL"); v != "" {
		cfg.MQTT.BrokerURL = v
	}
}

// errorCode maps a poll failure to its wire code. Unrecognized errors
// collapse to the generic code.
func errorCode(err error) uint16 {
	switch {
	case err == nil:
		return status.CodeNone
	case errors.Is(err, dtu.ErrConnectionFailure):
		return status.CodeConnection
	case errors.Is(err, dtu.ErrCharacteristicNotFound):
		return status.CodeCharacteristic
	case errors.Is(err, dtu.ErrTimeout):
		return status.CodeTimeout
	case errors.Is(err, dtu.ErrParseFailure):
		return status.CodeParse
	default:
		return status.CodeGeneric
	}
}
