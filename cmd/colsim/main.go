// Package main provides the colsim CLI for building and simulating
// distillation column models.
package main

func main() {
	Execute()
}
