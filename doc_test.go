package trie

import "fmt"

func Example() {
	d := New()
	d.AddWords("bad", "dad", "mad", "magic")

	fmt.Println(d.Contains("pad"))
	fmt.Println(d.Contains(".ad"))

	results, _ := d.Search("ma")
	fmt.Println(results)

	_, err := d.Search(".ad")
	fmt.Println(err)

	// Output:
	// false <nil>
	// true <nil>
	// [mad magic]
	// invalid characters: input must only contain lowercase letters a-z
}

func Example_emptyWord() {
	d := New()
	d.AddWords("mad", "madmax")

	found, _ := d.Contains("")
	fmt.Println(found)
	results, _ := d.Search("")
	fmt.Println(results)

	d.AddWord("")
	found, _ = d.Contains("")
	fmt.Println(found)
	results, _ = d.Search("")
	fmt.Printf("%q\n", results)

	// Output:
	// false
	// [mad madmax]
	// true
	// ["" "mad" "madmax"]
}
