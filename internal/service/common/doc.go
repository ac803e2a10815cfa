// Package common contains helpers shared by the demo commands.
package common
