package locator

import (
	"io"

	"github.com/omnifaces/locator/util/errs"
	"github.com/spf13/viper"
)

// Config file properties, under the 'locator' tree, e.g.:
//
//	locator:
//	  provider: "zookeeper"
//	  namespace: "ns:app/"
//	  cache-remote: true
//	  environment:
//	    zookeeper.hosts: "zk1:2181,zk2:2181"
const (
	PropProvider    = "locator.provider"
	PropNamespace   = "locator.namespace"
	PropNoCaching   = "locator.no-caching"
	PropCacheRemote = "locator.cache-remote"
	PropEnvironment = "locator.environment"
)

// Load a Builder from a config file (format inferred from the extension).
//
// The returned Builder is not consumed yet, options absent from the file may
// still be set before Build.
func BuilderFromConfigFile(configFile string) (*Builder, error) {
	vp := viper.New()
	vp.SetConfigFile(configFile)
	if err := vp.ReadInConfig(); err != nil {
		return nil, errs.WrapErrf(err, "failed to read config file '%s'", configFile)
	}
	return builderFromViper(vp)
}

// Load a Builder from reader, configType being e.g. "yaml", "json".
func BuilderFromConfigReader(reader io.Reader, configType string) (*Builder, error) {
	vp := viper.New()
	vp.SetConfigType(configType)
	if err := vp.ReadConfig(reader); err != nil {
		return nil, errs.WrapErrf(err, "failed to read config")
	}
	return builderFromViper(vp)
}

func builderFromViper(vp *viper.Viper) (b *Builder, err error) {
	// builder misuse panics, a bad config file should surface as an error
	defer func() {
		if r := recover(); r != nil {
			if re, ok := r.(error); ok {
				b = nil
				err = re
				return
			}
			panic(r)
		}
	}()

	b = NewBuilder()
	if vp.IsSet(PropEnvironment) {
		b.Environment(vp.GetStringMapString(PropEnvironment))
	}
	if vp.IsSet(PropNamespace) {
		b.Namespace(vp.GetString(PropNamespace))
	}
	if vp.GetBool(PropNoCaching) {
		b.NoCaching()
	}
	if vp.GetBool(PropCacheRemote) {
		b.CacheRemote()
	}
	if vp.IsSet(PropProvider) {
		b.Provider(vp.GetString(PropProvider))
	}
	return b, nil
}
