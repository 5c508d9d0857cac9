package treesitter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/callscope/internal/codemodel"
)

const javaFixtureDir = "../../../testdata/code/java"

func openJava(t *testing.T) *Provider {
	t.Helper()
	p, err := NewProvider("java")
	require.NoError(t, err)
	require.NoError(t, p.Open(context.Background(), javaFixtureDir,
		[]string{"UserController.java", "UserService.java", "UserRepository.java", "UserRecord.java"}, nil))
	return p
}

func TestJavaProvider_Types(t *testing.T) {
	t.Parallel()

	p := openJava(t)

	controller := findType(t, p, "UserController")
	assert.Equal(t, "com.example.web", controller.Namespace)
	assert.Equal(t, "BaseController", controller.BaseType)
	assert.Equal(t, []string{"RestController"}, controller.Attributes)

	service := findType(t, p, "UserService")
	assert.Equal(t, "com.example.service", service.Namespace)
	assert.Empty(t, service.BaseType)
}

func TestJavaProvider_Members(t *testing.T) {
	t.Parallel()

	p := openJava(t)
	controller := findType(t, p, "UserController")

	list := findMember(t, p, controller, "list", codemodel.KindMethod)
	assert.True(t, list.Public)
	assert.Equal(t, "ResponseEntity", list.ReturnType)
	assert.Equal(t, []string{"GetMapping"}, list.Attributes)
	assert.Equal(t, 0, list.ParamCount)

	register := findMember(t, p, controller, "register", codemodel.KindMethod)
	assert.Equal(t, []string{"PostMapping"}, register.Attributes)
	assert.Equal(t, 1, register.ParamCount)

	render := findMember(t, p, controller, "render", codemodel.KindMethod)
	assert.False(t, render.Public)

	users := findMember(t, p, controller, "users", codemodel.KindField)
	assert.Equal(t, "UserService", users.ReturnType)
}

func TestJavaProvider_Constructors(t *testing.T) {
	t.Parallel()

	p := openJava(t)

	t.Run("explicit", func(t *testing.T) {
		t.Parallel()
		record := findType(t, p, "UserRecord")
		ctor := findMember(t, p, record, "ctor", codemodel.KindConstructor)
		assert.Equal(t, 1, ctor.ParamCount)

		_, err := p.SourceDefinition(ctor)
		assert.NoError(t, err)
	})

	t.Run("implicit", func(t *testing.T) {
		t.Parallel()
		service := findType(t, p, "UserService")
		ctor := findMember(t, p, service, "ctor", codemodel.KindConstructor)

		_, err := p.SourceDefinition(ctor)
		assert.ErrorIs(t, err, codemodel.ErrNoDefinition)
	})
}

func TestJavaProvider_BodyExprs(t *testing.T) {
	t.Parallel()

	p := openJava(t)
	controller := findType(t, p, "UserController")
	register := findMember(t, p, controller, "register", codemodel.KindMethod)

	body, err := p.SourceDefinition(register)
	require.NoError(t, err)

	invocations := body.Descendants(codemodel.ExprInvocation)
	require.Len(t, invocations, 2)
	assert.Equal(t, "users", invocations[0].Receiver)
	assert.Equal(t, "save", invocations[0].Target)
	assert.Equal(t, "", invocations[1].Receiver)
	assert.Equal(t, "render", invocations[1].Target)

	creations := body.Descendants(codemodel.ExprCreation)
	require.Len(t, creations, 1)
	assert.Equal(t, "UserRecord", creations[0].Target)
	assert.Less(t, creations[0].Offset, invocations[0].Offset)
}

func TestJavaProvider_ScopeResolution(t *testing.T) {
	t.Parallel()

	p := openJava(t)
	controller := findType(t, p, "UserController")
	list := findMember(t, p, controller, "list", codemodel.KindMethod)

	body, err := p.SourceDefinition(list)
	require.NoError(t, err)
	scope, err := p.SemanticScope(body)
	require.NoError(t, err)

	m, err := scope.ResolveInvocation(codemodel.Expr{Kind: codemodel.ExprInvocation, Receiver: "users", Target: "findAll"})
	require.NoError(t, err)
	assert.Equal(t, "UserService", m.ContainingType)

	m, err = scope.ResolveInvocation(codemodel.Expr{Kind: codemodel.ExprInvocation, Target: "render"})
	require.NoError(t, err)
	assert.Equal(t, "UserController", m.ContainingType)
}
