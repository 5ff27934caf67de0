package pathext_test

import (
	"fmt"

	"github.com/jmgilman/go/sysfs/pathext"
	"github.com/jmgilman/go/sysfs/platform"
)

func ExampleRegistry() {
	env := platform.Map(map[string]string{"PATHEXT": ".PS1;exe;.bat"})
	reg := pathext.New(env)

	fmt.Println(reg.Extensions())
	fmt.Println(reg.Match("deploy.ps1"))
	fmt.Println(reg.Match("README"))
	// Output:
	// [.PS1 .exe .bat]
	// true
	// false
}
