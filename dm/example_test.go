package dm_test

import (
	"errors"
	"fmt"

	"github.com/sartorproj/godm/dm"
)

func ExampleTest() {
	e1 := []float64{0.5, -1.2, 0.3, 0.8, -0.4, 1.1, -0.6, 0.2, 0.9, -0.7}
	e2 := []float64{1.0, -1.5, 0.9, -1.1, 0.7, 1.4, -0.8, 0.6, -1.2, 0.5}

	result, err := dm.Test(e1, e2, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("DM=%.4f p=%.5f\n", result.Statistic, result.PValue)
	// Output: DM=-4.7939 p=0.00098
}

func ExampleTest_absoluteLoss() {
	e1 := []float64{0.5, -1.2, 0.3, 0.8, -0.4, 1.1, -0.6, 0.2, 0.9, -0.7}
	e2 := []float64{1.0, -1.5, 0.9, -1.1, 0.7, 1.4, -0.8, 0.6, -1.2, 0.5}

	config := dm.DefaultConfig()
	config.Horizon = 2
	config.Power = 1

	result, err := dm.Test(e1, e2, config)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("DM=%.4f p=%.4f h=%d\n", result.Statistic, result.PValue, result.Horizon)
	// Output: DM=-4.1295 p=0.0026 h=2
}

func ExampleTest_identicalErrors() {
	e := []float64{0.3, -1.2, 0.8, 0.1}

	_, err := dm.Test(e, e, nil)
	fmt.Println(errors.Is(err, dm.ErrDegenerateVariance))
	// Output: true
}
