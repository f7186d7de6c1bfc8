package pokedex_test

import (
	"fmt"

	"github.com/matzehuels/pokedex/pkg/pokedex"
)

func ExampleFormatDisplayName() {
	fmt.Println(pokedex.FormatDisplayName("mr-mime"))
	fmt.Println(pokedex.FormatDisplayName("charizard"))
	// Output:
	// Mr Mime
	// Charizard
}

func ExampleFormatStatLabel() {
	fmt.Println(pokedex.FormatStatLabel("special-attack"))
	fmt.Println(pokedex.FormatStatLabel("unknown-key"))
	// Output:
	// Sp. Atk
	// unknown-key
}

func ExampleStatPercentage() {
	// Base stats are scaled against 255 and floored
	for _, base := range []int{0, 128, 255, 300} {
		fmt.Println(base, pokedex.StatPercentage(base))
	}
	// Output:
	// 0 0
	// 128 50
	// 255 100
	// 300 100
}

func ExampleExtractID() {
	fmt.Println(pokedex.ExtractID("https://pokeapi.co/api/v2/pokemon/25/"))
	fmt.Println(pokedex.ExtractID("https://pokeapi.co/api/v2/pokemon/25"))
	// Output:
	// 25
	// 25
}

func ExampleImageURL() {
	fmt.Println(pokedex.ImageURL("25"))
	// Output:
	// https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/25.png
}
