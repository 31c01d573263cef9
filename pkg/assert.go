package pkg

import "freightflow"

func AssertNoError(err error) {
	if err != nil {
		freightflow.Logger.Error().Err(err).Msg("Error occurred that should not have occurred.")
		panic(err)
	}
}
