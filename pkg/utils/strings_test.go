package utils

import (
	"testing"
)

func TestRemoveAccents(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"hello", "hello"},
		{"cobrança", "cobranca"},
		{"negociação", "negociacao"},
		{"café", "cafe"},
		{"José", "Jose"},
		{"São Paulo", "Sao Paulo"},
		{"naïve", "naive"},
		{"piñata", "pinata"},
	}

	for _, test := range tests {
		result := RemoveAccents(test.input)
		if result != test.expected {
			t.Errorf("RemoveAccents(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"pet", "pet"},
		{"pet_id", "pet_id"},
		{"pet-id", "pet_id"},
		{"user.name", "user_name"},
		{"tags[]", "tags"},
		{"filter[status]", "filter_status"},
		{"list(all)", "list_all"},
		{"a|b", "a_b"},
		{"a/b", "a_b"},
		{"200 Response", "200_Response"},
		{"$price", "price"},
		{"Pet's name", "Pets_name"},
		{"café", "cafe"},
		{"  padded  ", "padded"},
		{"_", "_"},
	}

	for _, test := range tests {
		result := SanitizeName(test.input)
		if result != test.expected {
			t.Errorf("SanitizeName(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"hello", "Hello"},
		{"helloWorld", "HelloWorld"},
		{"getUserById", "GetUserById"},
		{"XMLHttpRequest", "XMLHttpRequest"},
		{"hello-world", "HelloWorld"},
		{"hello_world", "HelloWorld"},
		{"hello world", "HelloWorld"},
		{"phone_number", "PhoneNumber"},
		{"200_response", "200Response"},
		{"HELLO_WORLD", "HELLOWORLD"},
		{"_u", "_U"},
		{"__private_field", "__PrivateField"},
	}

	for _, test := range tests {
		result := ToPascalCase(test.input)
		if result != test.expected {
			t.Errorf("ToPascalCase(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"hello", "hello"},
		{"Hello", "hello"},
		{"helloWorld", "helloWorld"},
		{"pet_id", "petId"},
		{"find_pets_by_status", "findPetsByStatus"},
		{"hello-world", "helloWorld"},
		{"hello world", "helloWorld"},
		{"_u", "_u"},
		{"_class", "_class"},
		{"__", "__"},
	}

	for _, test := range tests {
		result := ToCamelCase(test.input)
		if result != test.expected {
			t.Errorf("ToCamelCase(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"hello", "hello"},
		{"helloWorld", "hello_world"},
		{"getUserById", "get_user_by_id"},
		{"XMLHttpRequest", "xml_http_request"},
		{"PetID", "pet_id"},
		{"hello-world", "hello_world"},
		{"hello_world", "hello_world"},
		{"hello world", "hello_world"},
		{"HELLO_WORLD", "hello_world"},
		{"_u", "_u"},
	}

	for _, test := range tests {
		result := ToSnakeCase(test.input)
		if result != test.expected {
			t.Errorf("ToSnakeCase(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestToKebabCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"hello", "hello"},
		{"helloWorld", "hello-world"},
		{"Swagger Petstore", "swagger-petstore"},
		{"OpenAPI Petstore", "open-api-petstore"},
		{"hello_world", "hello-world"},
	}

	for _, test := range tests {
		result := ToKebabCase(test.input)
		if result != test.expected {
			t.Errorf("ToKebabCase(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestCasingIsIdempotent(t *testing.T) {
	inputs := []string{"pet_id", "PetStore", "XMLHttpRequest", "_u", "_1abc", "find_pets_by_status", "200Response"}
	for _, in := range inputs {
		for name, fn := range map[string]func(string) string{
			"pascal": ToPascalCase,
			"camel":  ToCamelCase,
			"snake":  ToSnakeCase,
		} {
			once := fn(in)
			if twice := fn(once); twice != once {
				t.Errorf("%s(%q) not idempotent: %q then %q", name, in, once, twice)
			}
		}
	}
}
