// Package factory holds the two creational patterns of the catalogue.
//
// Factory Method: Logistics plans a delivery without knowing which Transport
// it will get; the creator decides through its factory function.
//
// Abstract Factory: a WidgetFactory produces a whole family of widgets that
// belong together, so a Form rendered with one factory never mixes themes.
package factory
