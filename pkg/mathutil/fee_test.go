package mathutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/odex-network/odex-daemon/pkg/mathutil"
)

func TestPlusFee(t *testing.T) {
	t.Parallel()

	withFee, fee := mathutil.PlusFee(10000, 30)
	require.Equal(t, uint64(10030), withFee)
	require.Equal(t, uint64(30), fee)

	withFee, fee = mathutil.PlusFee(1000, 25)
	require.Equal(t, uint64(1002), withFee)
	require.Equal(t, uint64(2), fee)
}

func TestLessFee(t *testing.T) {
	t.Parallel()

	lessFee, fee := mathutil.LessFee(10000, 30)
	require.Equal(t, uint64(9970), lessFee)
	require.Equal(t, uint64(30), fee)

	lessFee, fee = mathutil.LessFee(1000, 30)
	require.Equal(t, uint64(997), lessFee)
	require.Equal(t, uint64(3), fee)
}
