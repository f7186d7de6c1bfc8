package integrations_test

import (
	"fmt"

	"github.com/matzehuels/pokedex/pkg/integrations"
)

func ExampleNormalizeName() {
	// Resource names are normalized to lowercase with hyphens
	fmt.Println(integrations.NormalizeName("Kanto"))
	fmt.Println(integrations.NormalizeName("mr_mime"))
	fmt.Println(integrations.NormalizeName("  Tapu Koko  "))
	// Output:
	// kanto
	// mr-mime
	// tapu-koko
}

func ExampleJoinURL() {
	fmt.Println(integrations.JoinURL("https://pokeapi.co/api/v2/", "pokedex", "kanto"))
	// Output:
	// https://pokeapi.co/api/v2/pokedex/kanto
}
