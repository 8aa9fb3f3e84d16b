package resulttable_test

import (
	"fmt"

	"github.com/katalvlaran/ctlquant/resulttable"
)

// ExampleTable_Get shows the unset-vs-set distinction the NaN sentinel
// gives callers: an unwritten cell reports ok=false without an error.
func ExampleTable_Get() {
	table, err := resulttable.NewTable([]string{"phi"}, []string{"s0", "s1"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if err := table.Set("phi", "s0", 1); err != nil {
		fmt.Println("error:", err)
		return
	}

	v0, ok0, _ := table.Get("phi", "s0")
	_, ok1, _ := table.Get("phi", "s1")
	fmt.Println(v0, ok0, ok1)
	// Output:
	// 1 true false
}
