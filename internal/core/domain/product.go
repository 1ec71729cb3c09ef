package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")
var ErrInvalidCategory = errors.New("invalid product category")

// Categories is the closed set of listing categories. It mirrors the
// storefront's category picker; listings outside this set are rejected.
var Categories = []string{
	"Servo Motor",
	"Jumper Wire",
	"Breadboard",
	"Arduino",
	"Raspberry Pi",
	"Microcontroller",
	"Resistor",
	"Capacitor",
	"LED",
	"Sensor",
	"Potentiometer",
	"Transistor",
	"Diode",
	"Switch",
	"Battery",
	"Motor Driver",
	"Relay",
	"Voltage Regulator",
	"IC Chip",
	"Crystal Oscillator",
	"Buzzer",
	"Stepper Motor",
	"Heat Sink",
	"USB Module",
	"WiFi Module",
	"Bluetooth Module",
	"OLED Display",
	"LCD Display",
	"Joystick",
	"IR Sensor",
}

var categorySet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Categories))
	for _, c := range Categories {
		m[c] = struct{}{}
	}
	return m
}()

// ValidCategory reports whether name is one of the known categories.
func ValidCategory(name string) bool {
	_, ok := categorySet[name]
	return ok
}

// Seller is the contact snapshot embedded in a product at creation time.
// It is never re-synced with the live user record, so a listing always shows
// the contact details the seller entered when posting it.
type Seller struct {
	UserID string `json:"userId" bson:"userId"`
	Email  string `json:"email" bson:"email"`
	Phone  string `json:"phone" bson:"phone"`
}

// Product is a marketplace listing. Immutable after creation; only an admin
// may delete one.
type Product struct {
	ID          string    `json:"_id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Category    string    `json:"category" bson:"category"`
	Price       float64   `json:"price" bson:"price"`
	Description string    `json:"description" bson:"description"`
	Image       string    `json:"image,omitempty" bson:"image,omitempty"`
	Seller      Seller    `json:"seller" bson:"seller"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}
