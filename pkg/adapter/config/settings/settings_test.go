// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/momeni/ddlwork/pkg/adapter/config/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleDuration_String() {
	for _, d := range []time.Duration{
		0, 10 * time.Second, 2 * time.Minute, 90 * time.Second,
		time.Hour, 90 * time.Minute,
	} {
		fmt.Println(settings.Duration(d))
	}
	// Output:
	// 0s
	// 10s
	// 2m
	// 1m30s
	// 1h
	// 1h30m
}

func TestDurationText(t *testing.T) {
	var d settings.Duration
	require.NoError(t, d.UnmarshalText([]byte("1h30m")))
	assert.Equal(t, 90*time.Minute, d.Std())
	b, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1h30m", string(b))

	assert.Error(t, d.UnmarshalText([]byte("soon")))
	assert.Equal(t, 90*time.Minute, d.Std(), "failed parse must keep d")
}

func TestDefault(t *testing.T) {
	var p *int
	settings.Default(&p, 5)
	require.NotNil(t, p)
	assert.Equal(t, 5, *p)
	settings.Default(&p, 7)
	assert.Equal(t, 5, *p)

	var b *bool
	settings.Nil2Zero(&b)
	require.NotNil(t, b)
	assert.False(t, *b)
}

func TestClamp(t *testing.T) {
	lo, hi := settings.Duration(time.Second), settings.Duration(time.Minute)
	b := settings.Bounds[settings.Duration]{Min: &lo, Max: &hi}

	v := settings.Duration(10 * time.Second)
	assert.Nil(t, b.Clamp(&v))
	assert.Nil(t, b.Clamp(nil))

	v = settings.Duration(time.Millisecond)
	err := b.Clamp(&v)
	require.NotNil(t, err)
	assert.True(t, err.LessThanMin)
	assert.Equal(t, lo, v)
	assert.EqualError(t, err, "1ms is less than min")

	v = settings.Duration(time.Hour)
	err = b.Clamp(&v)
	require.NotNil(t, err)
	assert.False(t, err.LessThanMin)
	assert.Equal(t, hi, v)

	open := settings.Bounds[int]{}
	n := -100
	assert.Nil(t, open.Clamp(&n))
}
