package ldap

import (
	"fmt"

	"github.com/go-ldap/ldap/v3"
	"github.com/omnifaces/locator/locator"
	"github.com/omnifaces/locator/util/errs"
)

// Environment entries understood by the LDAP directory provider.
const (
	PropLdapUrl          = "ldap.url" // e.g. "ldaps://ldap.example.com", required
	PropLdapBaseDn       = "ldap.base-dn"
	PropLdapBindDn       = "ldap.bind-dn"
	PropLdapBindPassword = "ldap.bind-password"
)

func init() {
	locator.RegisterProvider("ldap", NewDirectory)
}

// Directory backed by an LDAP server.
//
// A lookup searches the configured base DN for an entry whose cn equals the
// qualified name; the resolved object is the *ldap.Entry.
type LdapDirectory struct {
	conn   *ldap.Conn
	baseDn string
}

// Dial the LDAP server using the locator environment entries, binding when
// bind credentials are configured.
func NewDirectory(env map[string]string) (locator.Directory, error) {
	url, ok := env[PropLdapUrl]
	if !ok || url == "" {
		return nil, errs.NewErrf("missing %s environment entry", PropLdapUrl)
	}

	locator.Infof("Dialing LDAP server: %s", url)
	conn, err := ldap.DialURL(url)
	if err != nil {
		return nil, errs.WrapErrf(err, "dial ldap '%s' failed", url)
	}

	if bindDn, ok := env[PropLdapBindDn]; ok && bindDn != "" {
		if err := conn.Bind(bindDn, env[PropLdapBindPassword]); err != nil {
			conn.Close()
			return nil, errs.WrapErrf(err, "ldap bind as '%s' failed", bindDn)
		}
	}
	return &LdapDirectory{conn: conn, baseDn: env[PropLdapBaseDn]}, nil
}

func (d *LdapDirectory) Lookup(name string) (any, error) {
	req := ldap.NewSearchRequest(
		d.baseDn,
		ldap.ScopeWholeSubtree, ldap.NeverDerefAliases, 1, 0, false,
		fmt.Sprintf("(cn=%s)", ldap.EscapeFilter(name)),
		[]string{"*"},
		nil,
	)

	res, err := d.conn.Search(req)
	if err != nil {
		if ldap.IsErrorWithCode(err, ldap.LDAPResultNoSuchObject) {
			return nil, locator.ErrNameNotFound.Wrapf(err, "no ldap entry for '%s'", name)
		}
		// the search is capped at one entry, a full result set is not an error
		if !ldap.IsErrorWithCode(err, ldap.LDAPResultSizeLimitExceeded) {
			return nil, errs.WrapErrf(err, "ldap search for '%s' failed", name)
		}
	}
	if res == nil || len(res.Entries) == 0 {
		return nil, locator.ErrNameNotFound.WithInternalMsg("no ldap entry for '%s'", name)
	}
	return res.Entries[0], nil
}
