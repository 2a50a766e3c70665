package feed

import (
	commonComp "github.com/memehub/memehub/internal/http/handler/webui/common/component"
)

type Options struct {
	Ads commonComp.AdsVModel
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithAds(ads commonComp.AdsVModel) OptionFunc {
	return func(opts *Options) {
		opts.Ads = ads
	}
}
